package registry

// SeniorityLevel is one rung of the seniority hierarchy with the
// keywords that identify it.
type SeniorityLevel struct {
	Name     string
	Keywords []string
}

// Canonical seniority level names, highest first.
const (
	SeniorityDirectorVP  = "director_vp"
	SeniorityManagerLead = "manager_lead"
	SenioritySenior      = "senior"
	SeniorityMidLevel    = "mid_level"
	SeniorityJunior      = "junior"
	SeniorityIntern      = "intern"
)

// seniorityLevels is ordered highest seniority first. The order is the
// tie-break: "lead" appears under both manager_lead and senior, and a
// text matching both must classify as manager_lead.
var seniorityLevels = []SeniorityLevel{
	{Name: SeniorityDirectorVP, Keywords: []string{"director", "vice president", "phó giám đốc", "giám đốc"}},
	{Name: SeniorityManagerLead, Keywords: []string{"manager", "lead", "quản lý", "trưởng phòng"}},
	{Name: SenioritySenior, Keywords: []string{"senior", "lead", "trưởng nhóm", "5+", "5 năm"}},
	{Name: SeniorityMidLevel, Keywords: []string{"mid", "experienced", "chuyên viên", "3 năm", "4 năm", "3+"}},
	{Name: SeniorityJunior, Keywords: []string{"junior", "fresher", "entry-level", "entry"}},
	{Name: SeniorityIntern, Keywords: []string{"intern", "thực tập sinh"}},
}

// SeniorityLevels returns the priority-ordered seniority registry.
// The returned slice must be treated as read-only.
func SeniorityLevels() []SeniorityLevel {
	return seniorityLevels
}
