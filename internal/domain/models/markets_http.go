package models

// Requests for the market status HTTP endpoints. An empty tz or exchanges
// falls back to the handler's configured report defaults.

type StatusRequest struct {
	Timezone  string `query:"tz" json:"tz" validate:"omitempty,timezone"`
	Exchanges string `query:"exchanges" json:"exchanges"`
	At        string `query:"at" json:"at"`
}

type ReportRequest struct {
	Timezone  string `query:"tz" json:"tz" validate:"omitempty,timezone"`
	Exchanges string `query:"exchanges" json:"exchanges"`
	At        string `query:"at" json:"at"`
	Name      string `query:"name" json:"name" validate:"max=64"`
	Format    string `query:"format" json:"format" default:"html" validate:"oneof=html text"`
}
