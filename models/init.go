package models

// All returns every model in migration order, parents before children so
// AutoMigrate can declare the FK constraints that mirror the cascade rules
func All() []interface{} {
	return []interface{}{
		&Person{},
		&Team{},
		&TeamMember{},
		&Project{},
		&Milestone{},
		&ProjectStakeholder{},
		&ProjectResource{},
		&MilestoneResource{},
		&ProjectNote{},
		&MilestoneNote{},
		&StakeholderNote{},
	}
}
