package domain

const (
	// ListingReward is awarded for every product listed while logged in
	ListingReward = 10
	// CheckoutRewardPerLine is awarded per distinct cart line on checkout
	CheckoutRewardPerLine = 5
)

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	EcoPoints int    `json:"eco_points"`
	Avatar    string `json:"avatar,omitempty"`
}

// UserPatch carries the fields of an UpdateUser action; nil fields are left alone
type UserPatch struct {
	Email     *string `json:"email,omitempty"`
	Username  *string `json:"username,omitempty"`
	EcoPoints *int    `json:"eco_points,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
}

// Apply returns a copy of u with the patch merged in
func (p UserPatch) Apply(u User) User {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.EcoPoints != nil {
		u.EcoPoints = *p.EcoPoints
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	return u
}
