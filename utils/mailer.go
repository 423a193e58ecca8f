package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var sesClient *ses.Client

func InitSES() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("AWS config load failed: %v", err)
	}
	sesClient = ses.NewFromConfig(cfg)
}

func sendEmail(to string, subject string, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendAnalysisShareEmail mails a summary of a meal analysis to a recipient the
// user chose to share it with.
func SendAnalysisShareEmail(to, senderName, mealType string, peakValue int, riskLevel string) error {
	subject := fmt.Sprintf("%s shared a meal analysis with you", senderName)
	body := fmt.Sprintf(
		"%s shared their %s analysis with you.\n\nPredicted glucose peak: %d mg/dL\nRisk level: %s\n\nOpen the app to see the full breakdown.",
		senderName, mealType, peakValue, riskLevel,
	)
	return sendEmail(to, subject, body)
}
