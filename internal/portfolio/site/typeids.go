package site

// TypeID constants for route components. Equal IDs at the same chain depth let
// the router keep an instance across navigations.
const (
	MainLayout_TypeID  uint32 = 0x8F22A1BC
	LandingPage_TypeID uint32 = 0x6C00C9FE
)
