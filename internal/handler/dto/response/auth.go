package response

import "enroll-ledger/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type UserResponse struct {
	User *queries.AuthorizedUserView `json:"user"`
}
