package analytics

import (
	"context"
	"strings"
)

type IndustryCount struct {
	Industry string `json:"industry"`
	Count    int    `json:"count"`
}

type SkillDemand struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

type RoleSalary struct {
	Role      string `json:"role"`
	AvgSalary int    `json:"avgSalary"`
}

type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type Summary struct {
	TotalJobs         int             `json:"totalJobs"`
	ActiveCandidates  int             `json:"activeCandidates"`
	TotalApplications int             `json:"totalApplications"`
	SuccessfulHires   int             `json:"successfulHires"`
	JobsByIndustry    []IndustryCount `json:"jobsByIndustry"`
	SkillDemand       []SkillDemand   `json:"skillDemand"`
	AvgSalaryByRole   []RoleSalary    `json:"avgSalaryByRole"`
	ApplicationTrends []TrendPoint    `json:"applicationTrends"`
}

type Repository interface {
	CountJobs(ctx context.Context) (int, error)
	CountAccountsByRole(ctx context.Context, role string) (int, error)
	CountApplications(ctx context.Context) (int, error)
	CountApplicationsByStatus(ctx context.Context, status string) (int, error)
	ListJobTitles(ctx context.Context) ([]string, error)
	ApplicationsPerDay(ctx context.Context) ([]TrendPoint, error)
}

// ClassifyIndustry buckets a job title by keyword match. Unmatched titles
// land in "Other".
func ClassifyIndustry(title string) string {
	lowered := strings.ToLower(title)
	switch {
	case strings.Contains(lowered, "software"), strings.Contains(lowered, "developer"), strings.Contains(lowered, "engineer"):
		return "Technology"
	case strings.Contains(lowered, "marketing"), strings.Contains(lowered, "sales"):
		return "Marketing & Sales"
	case strings.Contains(lowered, "finance"), strings.Contains(lowered, "accounting"):
		return "Finance"
	case strings.Contains(lowered, "design"), strings.Contains(lowered, "creative"):
		return "Design & Creative"
	default:
		return "Other"
	}
}
