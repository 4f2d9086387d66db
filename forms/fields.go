package forms

// Wizard steps, scholarship variants:
//   0 personal, 1 family, 2 education, 3 bank + essay, 4 documents & review.
// Spotlight:
//   0 personal, 1 education, 2 story, 3 documents, 4 review.

var firstYearSchema = &Schema{
	Variant: VariantFirstYear,
	Fields: []Field{
		{Name: "fullName", Column: "full_name", Step: 0, Required: true},
		{Name: "email", Column: "email", Step: 0, Rule: "email", Required: true},
		{Name: "phone", Column: "phone", Step: 0, Rule: "numeric,len=10", Required: true},
		{Name: "dateOfBirth", Column: "date_of_birth", Step: 0, Rule: "datetime=2006-01-02", Required: true},
		{Name: "gender", Column: "gender", Step: 0, Rule: "oneof=male female other", Required: true},
		{Name: "aadharNumber", Column: "aadhar_number", Step: 0, Rule: "numeric,len=12", Required: true},
		{Name: "address", Column: "address", Step: 0, Required: true},
		{Name: "city", Column: "city", Step: 0, Required: true},
		{Name: "state", Column: "state", Step: 0, Required: true},
		{Name: "pincode", Column: "pincode", Step: 0, Rule: "numeric,len=6", Required: true},

		{Name: "fatherName", Column: "father_name", Step: 1, Required: true},
		{Name: "fatherOccupation", Column: "father_occupation", Step: 1, Required: true},
		{Name: "motherName", Column: "mother_name", Step: 1, Required: true},
		{Name: "motherOccupation", Column: "mother_occupation", Step: 1, Required: true},
		{Name: "guardianName", Column: "guardian_name", Step: 1},
		{Name: "guardianPhone", Column: "guardian_phone", Step: 1, Rule: "numeric,len=10"},
		{Name: "annualIncome", Column: "annual_income", Step: 1, Rule: "numeric", Required: true},
		{Name: "parentStatus", Column: "parent_status", Step: 1, Rule: "oneof=both single_father single_mother orphan", Required: true},

		{Name: "schoolName", Column: "school_name", Step: 2, Required: true},
		{Name: "sscBoard", Column: "ssc_board", Step: 2, Required: true},
		{Name: "sscYear", Column: "ssc_year", Step: 2, Rule: "numeric,len=4", Required: true},
		{Name: "sscTotalMarks", Column: "ssc_total_marks", Step: 2, Rule: "numeric", Required: true},
		{Name: "sscMaxMarks", Column: "ssc_max_marks", Step: 2, Rule: "numeric", Required: true},
		{Name: "intendedStream", Column: "intended_stream", Step: 2, Required: true},

		{Name: "accountHolder", Column: "account_holder", Step: 3, Required: true},
		{Name: "accountNumber", Column: "account_number", Step: 3, Rule: "numeric,min=9,max=18", Required: true},
		{Name: "ifscCode", Column: "ifsc_code", Step: 3, Rule: "alphanum,len=11", Required: true},
		{Name: "bankName", Column: "bank_name", Step: 3, Required: true},
		{Name: "branchName", Column: "branch_name", Step: 3, Required: true},
		{Name: "whyScholarship", Column: "why_scholarship", Step: 3, Required: true},
		{Name: "additionalInfo", Column: "additional_info", Step: 3},
	},
	Derived: []DerivedField{
		{Name: "sscPercentage", Column: "ssc_percentage", Numerator: "sscTotalMarks", Divisor: "sscMaxMarks"},
	},
	Documents: []DocumentType{
		{Name: "ssc_marksheet", Label: "SSC Marksheet", Required: true},
		{Name: "aadhar_student", Label: "Student Aadhar Card", Required: true},
		{Name: "bank_passbook", Label: "Bank Passbook", Required: true},
		{Name: "photo", Label: "Passport Photo", Required: true},
		{Name: "income_certificate", Label: "Income Certificate"},
	},
}

var secondYearSchema = &Schema{
	Variant: VariantSecondYear,
	Fields: []Field{
		{Name: "fullName", Column: "full_name", Step: 0, Required: true},
		{Name: "email", Column: "email", Step: 0, Rule: "email", Required: true},
		{Name: "phone", Column: "phone", Step: 0, Rule: "numeric,len=10", Required: true},
		{Name: "dateOfBirth", Column: "date_of_birth", Step: 0, Rule: "datetime=2006-01-02", Required: true},
		{Name: "gender", Column: "gender", Step: 0, Rule: "oneof=male female other", Required: true},
		{Name: "aadharNumber", Column: "aadhar_number", Step: 0, Rule: "numeric,len=12", Required: true},
		{Name: "address", Column: "address", Step: 0, Required: true},
		{Name: "city", Column: "city", Step: 0, Required: true},
		{Name: "state", Column: "state", Step: 0, Required: true},
		{Name: "pincode", Column: "pincode", Step: 0, Rule: "numeric,len=6", Required: true},

		{Name: "fatherName", Column: "father_name", Step: 1, Required: true},
		{Name: "fatherOccupation", Column: "father_occupation", Step: 1, Required: true},
		{Name: "motherName", Column: "mother_name", Step: 1, Required: true},
		{Name: "motherOccupation", Column: "mother_occupation", Step: 1, Required: true},
		{Name: "guardianName", Column: "guardian_name", Step: 1},
		{Name: "guardianPhone", Column: "guardian_phone", Step: 1, Rule: "numeric,len=10"},
		{Name: "annualIncome", Column: "annual_income", Step: 1, Rule: "numeric", Required: true},
		{Name: "parentStatus", Column: "parent_status", Step: 1, Rule: "oneof=both single_father single_mother orphan", Required: true},

		{Name: "collegeName", Column: "college_name", Step: 2, Required: true},
		{Name: "course", Column: "course", Step: 2, Required: true},
		{Name: "hscBoard", Column: "hsc_board", Step: 2, Required: true},
		{Name: "hscYear", Column: "hsc_year", Step: 2, Rule: "numeric,len=4", Required: true},
		{Name: "hscTotalMarks", Column: "hsc_total_marks", Step: 2, Rule: "numeric", Required: true},
		{Name: "hscMaxMarks", Column: "hsc_max_marks", Step: 2, Rule: "numeric", Required: true},

		{Name: "accountHolder", Column: "account_holder", Step: 3, Required: true},
		{Name: "accountNumber", Column: "account_number", Step: 3, Rule: "numeric,min=9,max=18", Required: true},
		{Name: "ifscCode", Column: "ifsc_code", Step: 3, Rule: "alphanum,len=11", Required: true},
		{Name: "bankName", Column: "bank_name", Step: 3, Required: true},
		{Name: "branchName", Column: "branch_name", Step: 3, Required: true},
		{Name: "renewalEssay", Column: "renewal_essay", Step: 3, Required: true},
		{Name: "additionalInfo", Column: "additional_info", Step: 3},
	},
	Derived: []DerivedField{
		{Name: "hscPercentage", Column: "hsc_percentage", Numerator: "hscTotalMarks", Divisor: "hscMaxMarks"},
	},
	Documents: []DocumentType{
		{Name: "marksheet", Label: "Latest Marksheet", Required: true},
		{Name: "aadhar", Label: "Aadhar Card", Required: true},
		{Name: "bank_passbook", Label: "Bank Passbook", Required: true},
		{Name: "photo", Label: "Passport Photo", Required: true},
	},
}

var spotlightSchema = &Schema{
	Variant: VariantSpotlight,
	Fields: []Field{
		{Name: "fullName", Column: "full_name", Step: 0, Required: true},
		{Name: "email", Column: "email", Step: 0, Rule: "email", Required: true},
		{Name: "phone", Column: "phone", Step: 0, Rule: "numeric,len=10", Required: true},
		{Name: "dateOfBirth", Column: "date_of_birth", Step: 0, Rule: "datetime=2006-01-02", Required: true},
		{Name: "aadharNumber", Column: "aadhar_number", Step: 0, Rule: "numeric,len=12", Required: true},
		{Name: "city", Column: "city", Step: 0, Required: true},
		{Name: "state", Column: "state", Step: 0, Required: true},

		{Name: "schoolName", Column: "school_name", Step: 1, Required: true},
		{Name: "standard", Column: "standard", Step: 1, Required: true},
		{Name: "marksObtained", Column: "marks_obtained", Step: 1, Rule: "numeric", Required: true},
		{Name: "maxMarks", Column: "max_marks", Step: 1, Rule: "numeric", Required: true},

		{Name: "story", Column: "story", Step: 2, Required: true},
		{Name: "achievements", Column: "achievements", Step: 2},
	},
	Derived: []DerivedField{
		{Name: "percentage", Column: "percentage", Numerator: "marksObtained", Divisor: "maxMarks"},
	},
	Documents: []DocumentType{
		{Name: "marksheet", Label: "Latest Marksheet", Required: true},
		{Name: "aadhar", Label: "Aadhar Card", Required: true},
		{Name: "income_certificate", Label: "Income Certificate", Required: true},
		{Name: "photo", Label: "Passport Photo", Required: true},
	},
}
