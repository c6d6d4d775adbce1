package dtos

// ProfileRequest covers /createProfile and /editProfile. The nested shapes use
// the camelCase keys the frontend sends.
type ProfileRequest struct {
	OriginalEmail  string           `json:"originalEmail"`
	Email          string           `json:"email"`
	Firstname      string           `json:"firstname"`
	Lastname       string           `json:"lastname"`
	Phone          string           `json:"phone"`
	City           string           `json:"city"`
	Linkedin       string           `json:"linkedin"`
	Skills         []string         `json:"skills"`
	Certifications []string         `json:"certifications"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
}

type WorkExperience struct {
	Company           string `json:"company"`
	Position          string `json:"position"`
	YearsOfExperience int    `json:"yearsOfExperience"`
	Responsibilities  string `json:"responsibilities"`
}

type Education struct {
	Degree      string  `json:"degree"`
	Institution string  `json:"institution"`
	GPA         float64 `json:"gpa"`
	Field       string  `json:"field"`
	EndYear     int     `json:"endYear"`
}

// ProfileData is the aggregate the frontend reads back from /getProfile.
type ProfileData struct {
	UserID         uint             `json:"user_id"`
	Email          string           `json:"email"`
	Firstname      string           `json:"firstname"`
	Lastname       string           `json:"lastname"`
	Phone          string           `json:"phone"`
	Linkedin       string           `json:"linkedin"`
	City           string           `json:"city"`
	Skills         []string         `json:"skills"`
	Certifications []string         `json:"certifications"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
}
