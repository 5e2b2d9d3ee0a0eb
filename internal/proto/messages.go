package proto

type User struct {
	Id        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type PingResponse struct {
	Status string `json:"status"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type ReauthenticateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ReauthenticateResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type UpdatePasswordRequest struct {
	NewPassword string `json:"new_password"`
}

type UpdatePasswordResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type CurrentUserResponse struct {
	User *User `json:"user"`
}

type Profile struct {
	UserId    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	UpdatedAt string `json:"updated_at"`
}

type GetProfileRequest struct {
	UserId string `json:"user_id"`
}

type GetProfileResponse struct {
	Profile *Profile `json:"profile"`
}

// UpdateProfileRequest merges the non-nil name fields into the stored
// profile. UpdatedAt is an RFC 3339 timestamp.
type UpdateProfileRequest struct {
	UserId    string  `json:"user_id"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	UpdatedAt string  `json:"updated_at"`
}

type UpdateProfileResponse struct{}
