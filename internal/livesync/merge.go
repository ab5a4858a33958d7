package livesync

import (
	"sort"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/staff/internal/entity"
)

// Merge unions partitions by job id. When an id appears more than once the most
// recently updated copy wins, ties go to the earlier partition. The result is ordered
// by scheduled time, then id.
func Merge(partitions ...[]entity.JobAssignment) []entity.JobAssignment {
	byID := make(map[uuid.UUID]entity.JobAssignment)

	for _, p := range partitions {
		for _, job := range p {
			cur, ok := byID[job.ID]
			if ok && !job.UpdatedAt.After(cur.UpdatedAt) {
				continue
			}

			byID[job.ID] = job
		}
	}

	jobs := make([]entity.JobAssignment, 0, len(byID))
	for _, job := range byID {
		jobs = append(jobs, job)
	}

	sort.Slice(jobs, func(i, j int) bool {
		if !jobs[i].ScheduledAt.Equal(jobs[j].ScheduledAt) {
			return jobs[i].ScheduledAt.Before(jobs[j].ScheduledAt)
		}

		return jobs[i].ID.String() < jobs[j].ID.String()
	})

	return jobs
}
