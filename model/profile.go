package model

// Profile is the extended user profile kept by the user service. All fields
// are nullable server-side; the whole profile is null until first saved.
type Profile struct {
	Address   *string `json:"address"`
	City      *string `json:"city"`
	Pincode   *string `json:"pincode"`
	AvatarURL *string `json:"avatar_url"`
	Bio       *string `json:"bio"`
}

type ProfileResponse struct {
	User    *User    `json:"user"`
	Profile *Profile `json:"profile"`
}

// UpdateProfileForm is the profile edit buffer. Empty fields are omitted so
// the backend keeps their stored values.
type UpdateProfileForm struct {
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Pincode   string `json:"pincode,omitempty" validate:"omitempty,numeric,len=6"`
	AvatarURL string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	Bio       string `json:"bio,omitempty"`
}
