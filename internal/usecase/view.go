package usecase

// View names the screen served at the site root.
type View string

const (
	ViewHome  View = "HOME"
	ViewLogin View = "LOGIN"
	ViewAdmin View = "ADMIN"
)

const adminPortal = "admin"

// ResolveView picks the root screen from the portal query value and session state.
func ResolveView(portal string, authenticated bool) View {
	if portal != adminPortal {
		return ViewHome
	}
	if authenticated {
		return ViewAdmin
	}
	return ViewLogin
}
