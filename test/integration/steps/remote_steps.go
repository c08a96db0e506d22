package steps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
)

func (t *testContext) theRemoteAPIRespondsWithBody(method, path string, status int, body *godog.DocString) error {
	var payload any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(body.Content)), &payload); err != nil {
		return fmt.Errorf("invalid remote response body: %w", err)
	}
	remoteAPI.SetResponse(-1, method, path, status, payload)
	return nil
}

func (t *testContext) theRemoteAPIResponds(method, path string, status int) error {
	remoteAPI.SetResponse(-1, method, path, status, nil)
	return nil
}

func (t *testContext) theRemoteAPIShouldHaveReceived(quantity int, method, path string) error {
	received := remoteAPI.Requests(method, path)
	if len(received) != quantity {
		return fmt.Errorf("expected %d %s requests to %s, got %d", quantity, method, path, len(received))
	}
	return nil
}

func (t *testContext) theRemoteAPIRequestShouldHaveTheField(index int, method, path, field, expected string) error {
	received := remoteAPI.Requests(method, path)
	if index >= len(received) {
		return fmt.Errorf("only %d %s requests to %s were received", len(received), method, path)
	}

	value := getFieldValue(received[index].Body, field)
	actual := fmt.Sprintf("%v", value)
	if value == nil {
		actual = "null"
	}
	if actual != t.replacePlaceholders(expected) {
		return fmt.Errorf("remote request field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func (t *testContext) theRemoteAPIRequestShouldHaveTheHeader(method, path, header, expected string) error {
	received := remoteAPI.Requests(method, path)
	if len(received) == 0 {
		return fmt.Errorf("no %s request to %s was received", method, path)
	}

	expected = t.replacePlaceholders(expected)
	for _, request := range received {
		if request.Headers[header] != expected {
			return fmt.Errorf("remote request header '%s' expected '%s', got '%s'", header, expected, request.Headers[header])
		}
	}
	return nil
}

func (t *testContext) theBudgetAlertEmailsAreProcessed() error {
	if injector.EmailWorker == nil {
		return errors.New("email worker is not configured")
	}
	injector.EmailWorker.ProcessNow(context.Background())
	return nil
}

func (t *testContext) budgetAlertEmailsShouldHaveBeenSentTo(quantity int, recipient string) error {
	count := 0
	for _, sent := range emailSender.Sent() {
		if strings.EqualFold(sent.To, recipient) {
			count++
		}
	}
	if count != quantity {
		return fmt.Errorf("expected %d emails to %s, got %d", quantity, recipient, count)
	}
	return nil
}
