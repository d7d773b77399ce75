package models

// Skill is a self-declared competency of a student.
type Skill struct {
	Name     string `json:"name"`
	Level    string `json:"level"`
	Category string `json:"category"`
}

// Student is a collaborator profile on the collaboration hub.
type Student struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	University        string   `json:"university"`
	Year              string   `json:"year"`
	Location          string   `json:"location"`
	Bio               string   `json:"bio"`
	Skills            []Skill  `json:"skills"`
	LookingFor        []string `json:"looking_for"`
	Rating            float64  `json:"rating"`
	ProjectsCompleted int      `json:"projects_completed"`
	ResponseTime      string   `json:"response_time"`
	IsOnline          bool     `json:"is_online"`
	Email             string   `json:"email"`
	Portfolio         *string  `json:"portfolio,omitempty"`
	GitHub            *string  `json:"github,omitempty"`
}

// SkillNames lists the names of the student's skills.
func (s Student) SkillNames() []string {
	names := make([]string, 0, len(s.Skills))
	for _, skill := range s.Skills {
		names = append(names, skill.Name)
	}
	return names
}

// Project is an open call for collaborators.
type Project struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	SkillsNeeded   []string `json:"skills_needed"`
	Duration       string   `json:"duration"`
	TeamSize       int      `json:"team_size"`
	CurrentMembers int      `json:"current_members"`
	Deadline       string   `json:"deadline"`
	CreatedBy      int      `json:"created_by"`
	Status         string   `json:"status"`
	Budget         *string  `json:"budget,omitempty"`
	IsRemote       bool     `json:"is_remote"`
	Priority       string   `json:"priority"`
}
