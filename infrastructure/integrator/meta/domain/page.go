package metadomain

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type Page struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	AccessToken string `json:"access_token"`
}

type ResponsePages struct {
	Data   []Page `json:"data"`
	Paging Paging `json:"paging"`
}

type Paging struct {
	Cursors struct {
		Before string `json:"before"`
		After  string `json:"after"`
	} `json:"cursors"`
	Next string `json:"next,omitempty"`
}

// InstagramBusinessAccount é a conta do Instagram vinculada a uma página
type InstagramBusinessAccount struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

type ResponsePageBusinessAccount struct {
	ID                       string                    `json:"id"`
	InstagramBusinessAccount *InstagramBusinessAccount `json:"instagram_business_account"`
}

type InstagramProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
