package domain

// UserIdentity é o usuário retornado pelo /me da Graph API
type UserIdentity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// BusinessAccountLink é a conta Instagram Business vinculada a uma página
type BusinessAccountLink struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

// ManagedPage é uma página administrada pelo usuário. Quando a consulta da
// conta vinculada falha, InstagramAccount fica nil e Error descreve a falha.
type ManagedPage struct {
	PageID           string               `json:"page_id"`
	PageName         string               `json:"page_name"`
	PageCategory     string               `json:"page_category"`
	PageToken        string               `json:"page_token"`
	InstagramAccount *BusinessAccountLink `json:"instagram_account"`
	Error            string               `json:"error,omitempty"`
}

// HasError indica que a consulta da conta vinculada desta página falhou
func (p ManagedPage) HasError() bool {
	return p.Error != ""
}

type LinkedAccounts struct {
	User  UserIdentity  `json:"user_info"`
	Pages []ManagedPage `json:"pages_with_instagram"`
}

// FailedPages conta as páginas cuja consulta falhou
func (l *LinkedAccounts) FailedPages() int {
	failed := 0
	for _, page := range l.Pages {
		if page.HasError() {
			failed++
		}
	}
	return failed
}
