// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/gateway/config"
	"github.com/expense-tracker/gateway/internal/infra/dependency"
	"github.com/expense-tracker/gateway/internal/integration/email"
	"github.com/expense-tracker/gateway/internal/integration/persistence/model"
	"github.com/expense-tracker/gateway/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// Process-wide fixtures shared by every scenario. Scenarios run sequentially
// and reset them in before().
var (
	serverInit  sync.Once
	server      *httptest.Server
	injector    *dependency.Injector
	remoteAPI   *mock.RemoteAPI
	redisClient *redis.Client
	testDB      *mock.Db
	clock       *mock.Time
	emailSender *email.MockEmailSender
)

type testContext struct {
	uri         string
	headers     map[string]string
	client      *http.Client
	response    *response
	accessToken string
	userEmail   string
}

type response struct {
	status  int
	headers http.Header
	body    any
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})

	ctx.AfterSuite(func() {
		if server != nil {
			server.Close()
		}
		if remoteAPI != nil {
			remoteAPI.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the current time is "([^"]*)"$`, test.theCurrentTimeIs)

	// Auth steps
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Remote API steps
	ctx.Given(`^the remote API responds to "([^"]*)" "([^"]*)" with status (\d+) and body:$`, test.theRemoteAPIRespondsWithBody)
	ctx.Given(`^the remote API responds to "([^"]*)" "([^"]*)" with status (\d+)$`, test.theRemoteAPIResponds)
	ctx.Then(`^the remote API should have received (\d+) "([^"]*)" requests? to "([^"]*)"$`, test.theRemoteAPIShouldHaveReceived)
	ctx.Then(`^the remote API request (\d+) to "([^"]*)" "([^"]*)" should have the field "([^"]*)" with "([^"]*)"$`, test.theRemoteAPIRequestShouldHaveTheField)
	ctx.Then(`^the remote API request to "([^"]*)" "([^"]*)" should have the header "([^"]*)" with "([^"]*)"$`, test.theRemoteAPIRequestShouldHaveTheHeader)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items?$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should contain "([^"]*)"$`, test.theResponseHeaderShouldContain)

	// Budget alert steps
	ctx.When(`^the budget alert emails are processed$`, test.theBudgetAlertEmailsAreProcessed)
	ctx.Then(`^(\d+) budget alert emails? should have been sent to "([^"]*)"$`, test.budgetAlertEmailsShouldHaveBeenSentTo)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.userEmail = ""

	t.startServer()

	remoteAPI.Reset()
	clock.Reset()
	emailSender.Reset()
	_ = mock.ClearRedis(redisClient)
	_ = testDB.ClearDB()
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		remoteAPI = mock.NewRemoteAPI()
		remoteAPI.Start()

		redisClient = mock.NewRedis()
		clock = mock.NewTime()
		emailSender = email.NewMockEmailSender()
		testDB = mock.NewDb(map[string]any{
			"email_queue": &model.EmailQueueModel{},
		})

		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("REMOTE_API_URL", remoteAPI.GetUrl())
		_ = os.Setenv("JWT_SECRET", testJWTSecret)
		_ = os.Setenv("JWT_VERIFY", "true")
		_ = os.Setenv("EMAIL_ALERTS_ENABLED", "true")

		cfg := config.Load()

		var err error
		injector, err = dependency.NewInjector(cfg, dependency.Options{
			DB:          testDB.DbConn,
			Redis:       redisClient,
			EmailSender: emailSender,
			Now:         clock.Now,
		})
		if err != nil {
			panic("failed to wire dependencies: " + err.Error())
		}

		server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	})

	t.uri = server.URL
}

func (t *testContext) theAPIServerIsRunning() error {
	resp, err := t.client.Get(t.uri + "/health")
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (t *testContext) theCurrentTimeIs(value string) error {
	current, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return err
	}
	clock.SetCurrentTime(current)
	return nil
}
