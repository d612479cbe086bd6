package domain

// PairUpNotification is the queue message produced for each matched pair.
// Field names follow the wire schema consumed by the notification worker.
type PairUpNotification struct {
	PairUpNotificationID string         `json:"PairUpNotificationId"`
	TeamID               string         `json:"TeamId"`
	TeamName             string         `json:"TeamName"`
	PairUpUserData       PairUpUserData `json:"PairUpUserData"`
}

// PairUpUserData carries both recipients of one pair-up notification.
type PairUpUserData struct {
	Recipient1 PairUpRecipient `json:"Recipient1"`
	Recipient2 PairUpRecipient `json:"Recipient2"`
}

// PairUpRecipient is the minimal profile data needed to notify one side of a pair.
type PairUpRecipient struct {
	UserGivenName     string `json:"UserGivenName"`
	UserPrincipalName string `json:"UserPrincipalName"`
	UserObjectID      string `json:"UserObjectId"`
}
