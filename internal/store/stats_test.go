package store

import (
	"testing"
	"time"
)

// --- TaskStatistics ---

func TestTaskStatistics_CountsAndOverdue(t *testing.T) {
	s := newTestStore()
	past := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	future := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	s.CreateTask(NewTask{Title: "late", Status: TaskTodo, Priority: PriorityHigh, DueDate: &past})
	s.CreateTask(NewTask{Title: "late but done", Status: TaskDone, Priority: PriorityHigh, DueDate: &past})
	s.CreateTask(NewTask{Title: "on time", Status: TaskInProgress, Priority: PriorityLow, DueDate: &future})
	s.CreateTask(NewTask{Title: "no due date", Status: TaskTodo, Priority: PriorityLow})

	stats := s.TaskStatistics()

	if stats.Total != 4 {
		t.Errorf("Total = %d, want 4", stats.Total)
	}
	if stats.Overdue != 1 {
		t.Errorf("Overdue = %d, want 1 (done tasks past due are excluded)", stats.Overdue)
	}
	if stats.ByStatus[TaskTodo] != 2 || stats.ByStatus[TaskDone] != 1 || stats.ByStatus[TaskInProgress] != 1 {
		t.Errorf("ByStatus = %v", stats.ByStatus)
	}
	if stats.ByPriority[PriorityHigh] != 2 || stats.ByPriority[PriorityLow] != 2 {
		t.Errorf("ByPriority = %v", stats.ByPriority)
	}
}

func TestTaskStatistics_NoZeroFilledCategories(t *testing.T) {
	s := newTestStore()
	s.CreateTask(NewTask{Title: "only todo", Status: TaskTodo, Priority: PriorityLow})

	stats := s.TaskStatistics()

	if _, present := stats.ByStatus[TaskReview]; present {
		t.Error("ByStatus contains a zero-filled entry for review")
	}
	if _, present := stats.ByPriority[PriorityUrgent]; present {
		t.Error("ByPriority contains a zero-filled entry for urgent")
	}
	if len(stats.ByStatus) != 1 || len(stats.ByPriority) != 1 {
		t.Errorf("mappings = %v / %v, want single entries", stats.ByStatus, stats.ByPriority)
	}
}

func TestTaskStatistics_Empty(t *testing.T) {
	s := newTestStore()
	stats := s.TaskStatistics()
	if stats.Total != 0 || stats.Overdue != 0 || len(stats.ByStatus) != 0 || len(stats.ByPriority) != 0 {
		t.Errorf("empty store stats = %+v", stats)
	}
}

// --- ProjectStatistics ---

func TestProjectStatistics_Scenario(t *testing.T) {
	s := newTestStore()
	u := s.CreateUser(NewUser{Name: "Admin", Role: RoleAdmin})
	p := s.CreateProject(NewProject{Name: "Fresh", OwnerID: u.ID, Status: ProjectActive})
	s.CreateTask(NewTask{Title: "Unassigned", ProjectID: p.ID, Status: TaskTodo, Priority: PriorityLow})

	stats := s.ProjectStatistics(p.ID)

	if stats.TotalTasks != 1 {
		t.Errorf("TotalTasks = %d, want 1", stats.TotalTasks)
	}
	if stats.CompletedTasks != 0 || stats.InProgressTasks != 0 {
		t.Errorf("Completed/InProgress = %d/%d, want 0/0", stats.CompletedTasks, stats.InProgressTasks)
	}
	if len(stats.TeamMembers) != 0 {
		t.Errorf("TeamMembers = %v, want empty", stats.TeamMembers)
	}
}

func TestProjectStatistics_TeamMembersAreDistinct(t *testing.T) {
	s := newTestStore()
	p := s.CreateProject(NewProject{Name: "Busy", Status: ProjectActive})
	s.CreateTask(NewTask{Title: "a", ProjectID: p.ID, AssigneeID: strPtr("u1"), Status: TaskDone, Priority: PriorityLow})
	s.CreateTask(NewTask{Title: "b", ProjectID: p.ID, AssigneeID: strPtr("u1"), Status: TaskInProgress, Priority: PriorityLow})
	s.CreateTask(NewTask{Title: "c", ProjectID: p.ID, AssigneeID: strPtr("u2"), Status: TaskInProgress, Priority: PriorityLow})
	s.CreateTask(NewTask{Title: "d", ProjectID: "other", AssigneeID: strPtr("u3"), Status: TaskTodo, Priority: PriorityLow})

	stats := s.ProjectStatistics(p.ID)

	if stats.TotalTasks != 3 || stats.CompletedTasks != 1 || stats.InProgressTasks != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if len(stats.TeamMembers) != 2 || stats.TeamMembers[0] != "u1" || stats.TeamMembers[1] != "u2" {
		t.Errorf("TeamMembers = %v, want [u1 u2]", stats.TeamMembers)
	}
}

func TestProjectStatistics_UnknownProjectIsEmpty(t *testing.T) {
	s := newTestStore()
	stats := s.ProjectStatistics("ghost")
	if stats.TotalTasks != 0 || len(stats.TeamMembers) != 0 {
		t.Errorf("stats for unknown project = %+v", stats)
	}
}
