package ecs

type UpdateFrame struct {
	DeltaTime float64
	Query     *Query
	Commands  *Commands
}

func newUpdateFrame(dt float64, query *Query) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Query:     query,
		Commands:  newCommands(),
	}
}
