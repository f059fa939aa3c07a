// Package registry holds the static keyword tables the transformation
// engine matches against: skills, seniority levels and location aliases.
// The tables are built once at startup and shared read-only between
// transformer instances.
package registry

// Skill maps one canonical skill name to the surface forms that identify
// it in free text. Keywords are lowercase.
type Skill struct {
	Name     string
	Keywords []string
}

// SkillCategory groups canonical skills and carries the display label
// stored alongside each extracted skill.
type SkillCategory struct {
	Name   string
	Label  string
	Skills []Skill
}

// Display labels for skill categories.
const (
	LabelLanguage   = "Language"
	LabelTool       = "Tool"
	LabelPlatform   = "Platform"
	LabelDatabase   = "Database"
	LabelTechnology = "Technology"
	LabelSkill      = "Skill"
	LabelSoftSkill  = "Soft Skill"
	LabelOther      = "Other"
)

var skillCategories = []SkillCategory{
	{
		Name:  "programming_languages",
		Label: LabelLanguage,
		Skills: []Skill{
			{Name: "Python", Keywords: []string{"python", "py"}},
			{Name: "SQL", Keywords: []string{"sql", "mysql", "postgresql", "mssql", "sqlite"}},
			{Name: "R", Keywords: []string{"r", "rstudio"}},
			{Name: "Java", Keywords: []string{"java"}},
			{Name: "Scala", Keywords: []string{"scala"}},
			{Name: "JavaScript", Keywords: []string{"javascript", "js", "node.js"}},
		},
	},
	{
		Name:  "bi_tools",
		Label: LabelTool,
		Skills: []Skill{
			{Name: "Excel", Keywords: []string{"excel", "microsoft excel"}},
			{Name: "Power BI", Keywords: []string{"power bi", "powerbi"}},
			{Name: "Tableau", Keywords: []string{"tableau"}},
			{Name: "Looker", Keywords: []string{"looker"}},
			{Name: "Qlik Sense", Keywords: []string{"qlik sense", "qliksense"}},
			{Name: "Google Data Studio", Keywords: []string{"google data studio", "looker studio"}},
		},
	},
	{
		Name:  "cloud_platforms",
		Label: LabelPlatform,
		Skills: []Skill{
			{Name: "AWS", Keywords: []string{"aws", "amazon web services"}},
			{Name: "Azure", Keywords: []string{"azure", "microsoft azure"}},
			{Name: "GCP", Keywords: []string{"gcp", "google cloud platform"}},
			{Name: "Snowflake", Keywords: []string{"snowflake"}},
			{Name: "Databricks", Keywords: []string{"databricks"}},
			{Name: "Redshift", Keywords: []string{"redshift"}},
			{Name: "BigQuery", Keywords: []string{"bigquery"}},
		},
	},
	{
		Name:  "databases",
		Label: LabelDatabase,
		Skills: []Skill{
			{Name: "PostgreSQL", Keywords: []string{"postgresql", "postgres"}},
			{Name: "SQL Server", Keywords: []string{"sql server"}},
			{Name: "MongoDB", Keywords: []string{"mongodb", "mongo db"}},
			{Name: "Oracle DB", Keywords: []string{"oracle db", "oracle database"}},
			{Name: "Elasticsearch", Keywords: []string{"elasticsearch"}},
			{Name: "Redis", Keywords: []string{"redis"}},
		},
	},
	{
		Name:  "big_data_technologies",
		Label: LabelTechnology,
		Skills: []Skill{
			{Name: "Spark", Keywords: []string{"spark", "apache spark"}},
			{Name: "Hadoop", Keywords: []string{"hadoop", "apache hadoop"}},
			{Name: "Kafka", Keywords: []string{"kafka", "apache kafka"}},
			{Name: "Flink", Keywords: []string{"flink", "apache flink"}},
		},
	},
	{
		Name:  "etl_tools",
		Label: LabelTool,
		Skills: []Skill{
			{Name: "Airflow", Keywords: []string{"airflow", "apache airflow"}},
			{Name: "Luigi", Keywords: []string{"luigi"}},
			{Name: "Talend", Keywords: []string{"talend"}},
			{Name: "SSIS", Keywords: []string{"ssis"}},
			{Name: "dbt", Keywords: []string{"dbt"}},
		},
	},
	{
		Name:  "version_control",
		Label: LabelTool,
		Skills: []Skill{
			{Name: "Git", Keywords: []string{"git", "github", "gitlab", "bitbucket"}},
		},
	},
	{
		Name:  "statistics_ml",
		Label: LabelSkill,
		Skills: []Skill{
			{Name: "Pandas", Keywords: []string{"pandas"}},
			{Name: "NumPy", Keywords: []string{"numpy"}},
			{Name: "Scikit-learn", Keywords: []string{"scikit-learn", "sklearn"}},
			{Name: "TensorFlow", Keywords: []string{"tensorflow"}},
			{Name: "Keras", Keywords: []string{"keras"}},
			{Name: "PyTorch", Keywords: []string{"pytorch"}},
			{Name: "Statsmodels", Keywords: []string{"statsmodels"}},
			{Name: "A/B Testing", Keywords: []string{"a/b testing", "ab testing"}},
			{Name: "Regression", Keywords: []string{"regression"}},
			{Name: "Classification", Keywords: []string{"classification"}},
			{Name: "Clustering", Keywords: []string{"clustering"}},
		},
	},
	{
		Name:  "soft_skills",
		Label: LabelSoftSkill,
		Skills: []Skill{
			{Name: "Communication", Keywords: []string{"communication", "communicating", "giao tiếp"}},
			{Name: "Problem Solving", Keywords: []string{"problem solving", "problem-solving"}},
			{Name: "Teamwork", Keywords: []string{"teamwork", "team player", "làm việc nhóm"}},
			{Name: "Critical Thinking", Keywords: []string{"critical thinking"}},
			{Name: "Attention to Detail", Keywords: []string{"attention to detail"}},
			{Name: "Adaptability", Keywords: []string{"adaptability", "adaptable"}},
		},
	},
}

// SkillCategories returns the full skill registry in iteration order.
// Each canonical skill belongs to exactly one category; the returned
// slice must be treated as read-only.
func SkillCategories() []SkillCategory {
	return skillCategories
}
