package authors

type ListAuthorsQuery struct {
	Limit  *int `query:"limit" json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	Offset *int `query:"offset" json:"offset,omitempty" validate:"omitempty,min=0"`
}

type CreateAuthorPayload struct {
	FirstName string `json:"first_name" mod:"trim" validate:"required,max=300"`
	LastName  string `json:"last_name" mod:"trim" validate:"required,max=300"`
}

type UpdateAuthorPayload struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=300"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=300"`
}
