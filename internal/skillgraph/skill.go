package skillgraph

// Skill is a single node in the prerequisite graph.
type Skill struct {
	ID         string
	Name       string
	Category   string
	Complexity int // 1-10 static difficulty rating
}

// Dependency is a directed edge: SkillID requires RequiresID.
type Dependency struct {
	SkillID    string
	RequiresID string
	Strength   float64 // [0,1], how critical the prerequisite is
}

// Prerequisite is one entry of a skill's prerequisite list.
type Prerequisite struct {
	Skill    Skill
	Strength float64
}
