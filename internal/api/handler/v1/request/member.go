package request

type CreateMemberRequest struct {
	Name string `json:"name"`
}

type UpdateMemberRequest struct {
	Name string `json:"name"`
}
