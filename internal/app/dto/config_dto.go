package dto

type ConfigResponse struct {
	DB   *string `json:"db"`
	Port *string `json:"port"`
}
