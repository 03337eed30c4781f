package store

import "time"

// Seed loads the fixed sample dataset: 2 users, 1 project, 2 tasks,
// 3 tags, and 1 comment. It runs once at process start so a fresh server
// always has data to demonstrate against.
func (s *Store) Seed() {
	alice := s.CreateUser(NewUser{
		Name:  "Alice Johnson",
		Email: "alice@example.com",
		Role:  RoleAdmin,
	})
	bob := s.CreateUser(NewUser{
		Name:  "Bob Smith",
		Email: "bob@example.com",
		Role:  RoleUser,
	})

	design := s.CreateTag(NewTag{Name: "design", Color: "#f59e0b"})
	frontend := s.CreateTag(NewTag{Name: "frontend", Color: "#3b82f6"})
	backend := s.CreateTag(NewTag{Name: "backend", Color: "#10b981"})

	website := s.CreateProject(NewProject{
		Name:        "Website Redesign",
		Description: "Overhaul of the public marketing site",
		OwnerID:     alice.ID,
		Status:      ProjectActive,
	})

	due := s.now().Add(7 * 24 * time.Hour)
	mockup := s.CreateTask(NewTask{
		Title:       "Design homepage mockup",
		Description: "Produce desktop and mobile mockups for the new homepage",
		ProjectID:   website.ID,
		AssigneeID:  &bob.ID,
		Status:      TaskInProgress,
		Priority:    PriorityHigh,
		DueDate:     &due,
		Tags:        []string{design.ID, frontend.ID},
	})
	s.CreateTask(NewTask{
		Title:       "Implement contact form",
		Description: "Wire the contact form to the mail service",
		ProjectID:   website.ID,
		Status:      TaskTodo,
		Priority:    PriorityMedium,
		Tags:        []string{frontend.ID, backend.ID},
	})

	s.CreateComment(NewComment{
		TaskID:  mockup.ID,
		UserID:  alice.ID,
		Content: "Mobile layout looks good — tighten the hero spacing before review.",
	})
}
