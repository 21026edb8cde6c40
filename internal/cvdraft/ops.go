package cvdraft

import (
	"fmt"
	"strings"
)

// List names one of the draft's ordered sections. Field and list names match
// the wire keys so callers address the same vocabulary everywhere.
type List string

const (
	Skills         List = "skills"
	Experiences    List = "experiences"
	EducationList  List = "education"
	Projects       List = "projects"
	Certifications List = "certifications"
	Languages      List = "languages"
	Hobbies        List = "hobbies"
	Volunteering   List = "volunteering"
	Awards         List = "awards"
)

// scalar reports whether the list holds plain strings.
func (l List) scalar() bool {
	switch l {
	case Skills, Hobbies, Volunteering, Awards:
		return true
	}
	return false
}

// SetField overwrites one scalar field of the given section. No validation
// happens here; validation is deferred to submission time.
func (d *Draft) SetField(section, key, value string) error {
	if section != "personalInfo" {
		return fmt.Errorf("unknown section %q", section)
	}

	switch key {
	case "name":
		d.PersonalInfo.Name = value
	case "email":
		d.PersonalInfo.Email = value
	case "phone":
		d.PersonalInfo.Phone = value
	case "title":
		d.PersonalInfo.Title = value
	case "linkedin":
		d.PersonalInfo.LinkedIn = value
	case "github":
		d.PersonalInfo.GitHub = value
	case "website":
		d.PersonalInfo.Website = value
	case "summary":
		d.Summary = value
	default:
		return fmt.Errorf("unknown personalInfo field %q", key)
	}

	return nil
}

// AppendEntry appends a zero-valued entry to a structured list and returns
// its position.
func (d *Draft) AppendEntry(list List) (int, error) {
	switch list {
	case Experiences:
		d.Experiences = append(d.Experiences, Experience{})
		return len(d.Experiences) - 1, nil
	case EducationList:
		d.Education = append(d.Education, Education{})
		return len(d.Education) - 1, nil
	case Projects:
		d.Projects = append(d.Projects, Project{Technologies: []string{}})
		return len(d.Projects) - 1, nil
	case Certifications:
		d.Certifications = append(d.Certifications, Certification{})
		return len(d.Certifications) - 1, nil
	case Languages:
		d.Languages = append(d.Languages, Language{})
		return len(d.Languages) - 1, nil
	default:
		return 0, fmt.Errorf("%q is not a structured list", list)
	}
}

// AppendString appends value to a scalar list after trimming whitespace.
// A blank value leaves the list unchanged and reports false.
func (d *Draft) AppendString(list List, value string) (bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return false, nil
	}

	switch list {
	case Skills:
		d.Skills = append(d.Skills, value)
	case Hobbies:
		d.Hobbies = append(d.Hobbies, value)
	case Volunteering:
		d.Volunteering = append(d.Volunteering, value)
	case Awards:
		d.Awards = append(d.Awards, value)
	default:
		return false, fmt.Errorf("%q is not a scalar list", list)
	}

	return true, nil
}

// SetPending records the uncommitted input value for a scalar list.
func (d *Draft) SetPending(list List, value string) {
	if d.pending == nil {
		d.pending = make(map[List]string)
	}
	d.pending[list] = value
}

// Pending returns the uncommitted input for a scalar list.
func (d *Draft) Pending(list List) string {
	return d.pending[list]
}

// CommitPending appends the pending input of a scalar list. The pending
// value clears only when the append actually happened; a blank input stays
// put so the caller's state is never cleared inconsistently.
func (d *Draft) CommitPending(list List) (bool, error) {
	added, err := d.AppendString(list, d.pending[list])
	if err != nil {
		return false, err
	}

	if added {
		delete(d.pending, list)
	}

	return added, nil
}

// UpdateEntry mutates one field of the positional entry of a structured
// list. An out-of-range index is a programming error and panics; an unknown
// field name is reported as an error.
func (d *Draft) UpdateEntry(list List, index int, field, value string) error {
	switch list {
	case Experiences:
		return d.Experiences[index].set(field, value)
	case EducationList:
		return d.Education[index].set(field, value)
	case Projects:
		return d.Projects[index].set(field, value)
	case Certifications:
		return d.Certifications[index].set(field, value)
	case Languages:
		return d.Languages[index].set(field, value)
	default:
		return fmt.Errorf("%q is not a structured list", list)
	}
}

// RemoveAt deletes the entry at index, shifting later entries down. Removing
// the last entry leaves an empty list. An out-of-range index panics.
func (d *Draft) RemoveAt(list List, index int) error {
	switch list {
	case Skills:
		d.Skills = append(d.Skills[:index], d.Skills[index+1:]...)
	case Experiences:
		d.Experiences = append(d.Experiences[:index], d.Experiences[index+1:]...)
	case EducationList:
		d.Education = append(d.Education[:index], d.Education[index+1:]...)
	case Projects:
		d.Projects = append(d.Projects[:index], d.Projects[index+1:]...)
	case Certifications:
		d.Certifications = append(d.Certifications[:index], d.Certifications[index+1:]...)
	case Languages:
		d.Languages = append(d.Languages[:index], d.Languages[index+1:]...)
	case Hobbies:
		d.Hobbies = append(d.Hobbies[:index], d.Hobbies[index+1:]...)
	case Volunteering:
		d.Volunteering = append(d.Volunteering[:index], d.Volunteering[index+1:]...)
	case Awards:
		d.Awards = append(d.Awards[:index], d.Awards[index+1:]...)
	default:
		return fmt.Errorf("unknown list %q", list)
	}

	return nil
}

// Len returns the current length of a list.
func (d *Draft) Len(list List) int {
	switch list {
	case Skills:
		return len(d.Skills)
	case Experiences:
		return len(d.Experiences)
	case EducationList:
		return len(d.Education)
	case Projects:
		return len(d.Projects)
	case Certifications:
		return len(d.Certifications)
	case Languages:
		return len(d.Languages)
	case Hobbies:
		return len(d.Hobbies)
	case Volunteering:
		return len(d.Volunteering)
	case Awards:
		return len(d.Awards)
	default:
		return 0
	}
}

// AddProjectTechnology appends a technology tag to the project at parent,
// with the same trim rule as scalar lists. Panics when parent is out of
// range.
func (d *Draft) AddProjectTechnology(parent int, value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}

	d.Projects[parent].Technologies = append(d.Projects[parent].Technologies, value)

	return true
}

// RemoveProjectTechnology deletes the technology tag at child from the
// project at parent.
func (d *Draft) RemoveProjectTechnology(parent, child int) {
	techs := d.Projects[parent].Technologies
	d.Projects[parent].Technologies = append(techs[:child], techs[child+1:]...)
}

func (e *Experience) set(field, value string) error {
	switch field {
	case "company":
		e.Company = value
	case "position":
		e.Position = value
	case "startDate":
		e.StartDate = value
	case "endDate":
		e.EndDate = value
	case "description":
		e.Description = value
	default:
		return fmt.Errorf("unknown experience field %q", field)
	}
	return nil
}

func (e *Education) set(field, value string) error {
	switch field {
	case "institution":
		e.Institution = value
	case "degree":
		e.Degree = value
	case "fieldOfStudy":
		e.FieldOfStudy = value
	case "startDate":
		e.StartDate = value
	case "endDate":
		e.EndDate = value
	default:
		return fmt.Errorf("unknown education field %q", field)
	}
	return nil
}

func (p *Project) set(field, value string) error {
	switch field {
	case "name":
		p.Name = value
	case "description":
		p.Description = value
	case "url":
		p.URL = value
	case "startDate":
		p.StartDate = value
	case "endDate":
		p.EndDate = value
	default:
		return fmt.Errorf("unknown project field %q", field)
	}
	return nil
}

func (c *Certification) set(field, value string) error {
	switch field {
	case "name":
		c.Name = value
	case "issuer":
		c.Issuer = value
	case "date":
		c.Date = value
	case "expiryDate":
		c.ExpiryDate = value
	case "credentialId":
		c.CredentialID = value
	case "credentialUrl":
		c.CredentialURL = value
	default:
		return fmt.Errorf("unknown certification field %q", field)
	}
	return nil
}

func (l *Language) set(field, value string) error {
	switch field {
	case "name":
		l.Name = value
	case "proficiency":
		l.Proficiency = value
	default:
		return fmt.Errorf("unknown language field %q", field)
	}
	return nil
}
