package profile

// Profile is the single patient profile for the deployment.
type Profile struct {
	ID                int    `db:"id" json:"id"`
	Name              string `db:"name" json:"name"`
	Email             string `db:"email" json:"email"`
	Phone             string `db:"phone" json:"phone"`
	DateOfBirth       string `db:"date_of_birth" json:"dateOfBirth"`
	Gender            string `db:"gender" json:"gender"`
	BloodGroup        string `db:"blood_group" json:"bloodGroup"`
	Address           string `db:"address" json:"address"`
	EmergencyContact  string `db:"emergency_contact" json:"emergencyContact"`
	Allergies         string `db:"allergies" json:"allergies"`
	ChronicConditions string `db:"chronic_conditions" json:"chronicConditions"`
}

// Patch carries a partial profile update. Nil fields are left untouched.
type Patch struct {
	Name              *string `json:"name"`
	Email             *string `json:"email"`
	Phone             *string `json:"phone"`
	DateOfBirth       *string `json:"dateOfBirth"`
	Gender            *string `json:"gender"`
	BloodGroup        *string `json:"bloodGroup"`
	Address           *string `json:"address"`
	EmergencyContact  *string `json:"emergencyContact"`
	Allergies         *string `json:"allergies"`
	ChronicConditions *string `json:"chronicConditions"`
}

// DemoProfile is the profile loaded in in-memory mode.
func DemoProfile() *Profile {
	return &Profile{
		ID:                1,
		Name:              "John Doe",
		Email:             "john.doe@email.com",
		Phone:             "+1 234-567-8900",
		DateOfBirth:       "1990-05-15",
		Gender:            "Male",
		BloodGroup:        "O+",
		Address:           "123 Health Street, Medical City",
		EmergencyContact:  "+1 234-567-8901",
		Allergies:         "Penicillin, Peanuts",
		ChronicConditions: "None",
	}
}
