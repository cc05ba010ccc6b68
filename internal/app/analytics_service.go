package app

import (
	"context"
	"sort"

	"github.com/gitlord217/jobhubproapp/internal/domain/account"
	"github.com/gitlord217/jobhubproapp/internal/domain/analytics"
	"github.com/gitlord217/jobhubproapp/internal/domain/application"
)

type AnalyticsService struct {
	repo analytics.Repository
}

func NewAnalyticsService(repo analytics.Repository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// skillDemand and avgSalaryByRole are industry-standard reference figures,
// not derived from the store.
var skillDemand = []analytics.SkillDemand{
	{Skill: "JavaScript", Count: 2450},
	{Skill: "Python", Count: 2120},
	{Skill: "React", Count: 1890},
	{Skill: "SQL", Count: 1650},
	{Skill: "Node.js", Count: 1420},
	{Skill: "AWS", Count: 1350},
	{Skill: "TypeScript", Count: 1200},
	{Skill: "Docker", Count: 1100},
}

var avgSalaryByRole = []analytics.RoleSalary{
	{Role: "Senior Software Engineer", AvgSalary: 120000},
	{Role: "Product Manager", AvgSalary: 110000},
	{Role: "Data Scientist", AvgSalary: 105000},
	{Role: "Frontend Developer", AvgSalary: 85000},
	{Role: "Backend Developer", AvgSalary: 90000},
}

// ComputeSummary re-derives the whole rollup from the store on every call.
// There is no cached or incremental state.
func (s *AnalyticsService) ComputeSummary(ctx context.Context) (*analytics.Summary, error) {
	totalJobs, err := s.repo.CountJobs(ctx)
	if err != nil {
		return nil, err
	}
	activeCandidates, err := s.repo.CountAccountsByRole(ctx, string(account.RoleJobSeeker))
	if err != nil {
		return nil, err
	}
	totalApplications, err := s.repo.CountApplications(ctx)
	if err != nil {
		return nil, err
	}
	successfulHires, err := s.repo.CountApplicationsByStatus(ctx, string(application.StatusHired))
	if err != nil {
		return nil, err
	}

	titles, err := s.repo.ListJobTitles(ctx)
	if err != nil {
		return nil, err
	}
	histogram := map[string]int{}
	for _, title := range titles {
		histogram[analytics.ClassifyIndustry(title)]++
	}
	jobsByIndustry := make([]analytics.IndustryCount, 0, len(histogram))
	for industry, count := range histogram {
		jobsByIndustry = append(jobsByIndustry, analytics.IndustryCount{Industry: industry, Count: count})
	}
	sort.Slice(jobsByIndustry, func(i, k int) bool {
		if jobsByIndustry[i].Count != jobsByIndustry[k].Count {
			return jobsByIndustry[i].Count > jobsByIndustry[k].Count
		}
		return jobsByIndustry[i].Industry < jobsByIndustry[k].Industry
	})

	trends, err := s.repo.ApplicationsPerDay(ctx)
	if err != nil {
		return nil, err
	}

	return &analytics.Summary{
		TotalJobs:         totalJobs,
		ActiveCandidates:  activeCandidates,
		TotalApplications: totalApplications,
		SuccessfulHires:   successfulHires,
		JobsByIndustry:    jobsByIndustry,
		SkillDemand:       skillDemand,
		AvgSalaryByRole:   avgSalaryByRole,
		ApplicationTrends: trends,
	}, nil
}
