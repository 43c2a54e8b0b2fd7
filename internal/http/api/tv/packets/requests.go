package packets

// REQUEST FOR /api/tv/screens/pair
type PairRequest struct {
	ScreenID int    `json:"screen_id" binding:"required"`
	DeviceID string `json:"device_id" binding:"required"`
}
