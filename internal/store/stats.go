package store

import "slices"

// TaskStats is the workspace-wide task aggregate. ByStatus and ByPriority
// only contain categories that actually occur — no zero-filled entries.
type TaskStats struct {
	Total      int                  `json:"total"`
	ByStatus   map[TaskStatus]int   `json:"byStatus"`
	ByPriority map[TaskPriority]int `json:"byPriority"`
	Overdue    int                  `json:"overdue"`
}

// ProjectStats summarizes one project's tasks. TeamMembers is the sorted
// set of distinct non-null assignee ids among the project's tasks.
type ProjectStats struct {
	TotalTasks      int      `json:"totalTasks"`
	CompletedTasks  int      `json:"completedTasks"`
	InProgressTasks int      `json:"inProgressTasks"`
	TeamMembers     []string `json:"teamMembers"`
}

// TaskStatistics computes counts across all tasks. A task is overdue when
// it has a due date strictly before now and its status is not done.
func (s *Store) TaskStatistics() TaskStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	stats := TaskStats{
		ByStatus:   map[TaskStatus]int{},
		ByPriority: map[TaskPriority]int{},
	}
	for _, t := range s.tasks {
		stats.Total++
		stats.ByStatus[t.Status]++
		stats.ByPriority[t.Priority]++
		if t.DueDate != nil && t.DueDate.Before(now) && t.Status != TaskDone {
			stats.Overdue++
		}
	}
	return stats
}

// ProjectStatistics computes the aggregate for one project's tasks. An
// unknown project id yields an empty aggregate; existence checks are the
// caller's concern.
func (s *Store) ProjectStatistics(projectID string) ProjectStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := ProjectStats{TeamMembers: []string{}}
	members := map[string]bool{}
	for _, t := range s.tasks {
		if t.ProjectID != projectID {
			continue
		}
		stats.TotalTasks++
		switch t.Status {
		case TaskDone:
			stats.CompletedTasks++
		case TaskInProgress:
			stats.InProgressTasks++
		}
		if t.AssigneeID != nil && !members[*t.AssigneeID] {
			members[*t.AssigneeID] = true
			stats.TeamMembers = append(stats.TeamMembers, *t.AssigneeID)
		}
	}
	slices.Sort(stats.TeamMembers)
	return stats
}
