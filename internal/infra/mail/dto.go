package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string

	// OpsAddress receives every alert.
	OpsAddress string
}

type inboundAlertData struct {
	From      string
	Channel   string
	MessageID string
}

type deliveryFailureData struct {
	To        string
	Channel   string
	MessageID string
	Status    string
}
