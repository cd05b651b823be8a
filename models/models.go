package models

import "time"

// Student is one roster entry: a name and the score used for ranking.
// Names are not required to be unique.
type Student struct {
	Name  string  `json:"name"`  // Student name
	Score float64 `json:"score"` // Ranking score, higher is stronger
}

// Group is an ordered set of students formed together.
type Group []Student

// Assignment is the ordered list of groups from one partitioning run.
// Group i is presented as "Group i+1".
type Assignment []Group

// Role is the label attached to a group member.
type Role string

const (
	RoleLeader Role = "leader"
	RoleMember Role = ""
)

// Row is one labeled member of a group, as shown and exported.
type Row struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Role  Role    `json:"role"`
}

// GroupTable is a labeled group ready for display or export.
type GroupTable struct {
	Index int    `json:"index"` // 1-based group number
	Title string `json:"title"` // "Group {index}", also used as sheet name
	Rows  []Row  `json:"rows"`
}

// GroupStats summarizes one group.
type GroupStats struct {
	Index  int     `json:"index"`
	Size   int     `json:"size"`
	Mean   float64 `json:"mean"`
	Spread float64 `json:"spread"` // Highest minus lowest score
	Leader string  `json:"leader"`
}

// Roster is an uploaded student list kept for the duration of a session
type Roster struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"` // Uploaded file name
	Students   []Student `json:"students"`
	UploadedAt time.Time `json:"uploadedAt"`
}
