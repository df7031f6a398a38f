package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/softharbor/zenvia-bridge/pkg/zenvia"
)

// Smoke test against the real Zenvia API. Needs ZENVIA_API_TOKEN and
// WEBHOOK_URL in the environment (or a .env next to the binary).
func main() {
	godotenv.Load()

	client := zenvia.NewClient(os.Getenv("ZENVIA_API_TOKEN"))
	webhookURL := os.Getenv("WEBHOOK_URL")
	ctx := context.Background()

	for _, input := range []zenvia.CreateWebhookInput{
		{
			EventType:         zenvia.EventTypeMessage,
			WebhookURL:        webhookURL,
			CriteriaChannel:   "WhatsApp",
			CriteriaDirection: zenvia.DirectionIn,
		},
		{
			EventType:         zenvia.EventTypeMessage,
			WebhookURL:        webhookURL,
			CriteriaChannel:   "WhatsApp",
			CriteriaDirection: zenvia.DirectionOut,
		},
		{
			EventType:       zenvia.EventTypeMessageStatus,
			WebhookURL:      webhookURL,
			CriteriaChannel: "WhatsApp",
		},
	} {
		created, err := client.WebhookCreate(ctx, input)
		if err != nil {
			log.Fatalf("❌ Failed to create %s webhook: %v", input.EventType, err)
		}
		dump("webhook created", created)
	}

	sent, err := client.WhatsappSendTemplated(ctx,
		"soft-harbor", "5511974510831",
		"c5f3228e-3dd9-49be-9922-9f362ca5e089",
		map[string]string{
			"name":         "André",
			"productName":  "Chuchu bem gostoso",
			"deliveryDate": "11/01/2023",
		})
	if err != nil {
		log.Fatalf("❌ Failed to send templated message: %v", err)
	}
	dump("templated message sent", sent)

	// Free text only works inside the 24h window opened by the template above.
	sent, err = client.WhatsappSendText(ctx, "soft-harbor", "5511974510831", "testando 1234")
	if err != nil {
		log.Fatalf("❌ Failed to send text message: %v", err)
	}
	dump("text message sent", sent)
}

func dump(label string, body any) {
	pretty, _ := json.MarshalIndent(body, "", "  ")
	fmt.Printf("✅ %s:\n%s\n", label, pretty)
}
