// Package cvdraft models the CV being composed before it is sent to the
// backend. The draft is exclusively owned by its holder, lives in memory
// only and is always serializable: fields default to empty strings and
// lists, never to null.
package cvdraft

// PersonalInfo is the contact block of the draft. Summary is edited together
// with the other personal fields but travels top-level on the wire, see
// Draft.Summary.
type PersonalInfo struct {
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	Phone    string `json:"phone" yaml:"phone"`
	Title    string `json:"title" yaml:"title"`
	LinkedIn string `json:"linkedin" yaml:"linkedin"`
	GitHub   string `json:"github" yaml:"github"`
	Website  string `json:"website" yaml:"website"`
}

type Experience struct {
	Company     string `json:"company" yaml:"company"`
	Position    string `json:"position" yaml:"position"`
	StartDate   string `json:"startDate" yaml:"startDate"`
	EndDate     string `json:"endDate" yaml:"endDate"`
	Description string `json:"description" yaml:"description"`
}

type Education struct {
	Institution  string `json:"institution" yaml:"institution"`
	Degree       string `json:"degree" yaml:"degree"`
	FieldOfStudy string `json:"fieldOfStudy" yaml:"fieldOfStudy"`
	StartDate    string `json:"startDate" yaml:"startDate"`
	EndDate      string `json:"endDate" yaml:"endDate"`
}

type Project struct {
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	URL          string   `json:"url" yaml:"url"`
	StartDate    string   `json:"startDate" yaml:"startDate"`
	EndDate      string   `json:"endDate" yaml:"endDate"`
}

type Certification struct {
	Name          string `json:"name" yaml:"name"`
	Issuer        string `json:"issuer" yaml:"issuer"`
	Date          string `json:"date" yaml:"date"`
	ExpiryDate    string `json:"expiryDate" yaml:"expiryDate"`
	CredentialID  string `json:"credentialId" yaml:"credentialId"`
	CredentialURL string `json:"credentialUrl" yaml:"credentialUrl"`
}

type Language struct {
	Name        string `json:"name" yaml:"name"`
	Proficiency string `json:"proficiency" yaml:"proficiency"`
}

// Draft is the full editable CV. List order is insertion order and is
// significant; elements are addressed by position, duplicates are allowed.
type Draft struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo" yaml:"personalInfo"`
	Summary        string          `json:"summary" yaml:"summary"`
	Skills         []string        `json:"skills" yaml:"skills"`
	Experiences    []Experience    `json:"experiences" yaml:"experiences"`
	Education      []Education     `json:"education" yaml:"education"`
	Projects       []Project       `json:"projects" yaml:"projects"`
	Certifications []Certification `json:"certifications" yaml:"certifications"`
	Languages      []Language      `json:"languages" yaml:"languages"`
	Hobbies        []string        `json:"hobbies" yaml:"hobbies"`
	Volunteering   []string        `json:"volunteering" yaml:"volunteering"`
	Awards         []string        `json:"awards" yaml:"awards"`

	pending map[List]string
}

// New returns an empty draft with every list allocated so the zero draft
// marshals to empty arrays instead of nulls.
func New() *Draft {
	return &Draft{
		Skills:         []string{},
		Experiences:    []Experience{},
		Education:      []Education{},
		Projects:       []Project{},
		Certifications: []Certification{},
		Languages:      []Language{},
		Hobbies:        []string{},
		Volunteering:   []string{},
		Awards:         []string{},
	}
}
