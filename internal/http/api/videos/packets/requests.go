package packets

// body for minting a playback token
type StreamTokenRequest struct {
	VideoID string `json:"videoId"`
}

// body for recording a play
type IncrementViewRequest struct {
	VideoID string `json:"videoId"`
}
