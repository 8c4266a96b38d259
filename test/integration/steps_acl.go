package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc *TestContext

	response     *http.Response
	responseBody []byte

	// previous request, kept so scenarios can compare consecutive responses
	prevStatus int
	prevBody   []byte
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{tc: tc}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	// Background steps
	sc.Step(`^a Keywhiz server is running$`, s.aKeywhizServerIsRunning)
	sc.Step(`^an empty access control state$`, s.anEmptyAccessControlState)

	// Entity steps
	sc.Step(`^I create a client "([^"]*)"$`, s.iCreateAClient)
	sc.Step(`^I create a group "([^"]*)"$`, s.iCreateAGroup)
	sc.Step(`^I create a secret "([^"]*)"$`, s.iCreateASecret)
	sc.Step(`^I delete the client "([^"]*)"$`, s.iDeleteTheClient)
	sc.Step(`^I delete the group "([^"]*)"$`, s.iDeleteTheGroup)
	sc.Step(`^I delete the secret "([^"]*)"$`, s.iDeleteTheSecret)

	// Membership and grant steps
	sc.Step(`^I enroll client "([^"]*)" in group "([^"]*)"$`, s.iEnrollClientInGroup)
	sc.Step(`^I evict client "([^"]*)" from group "([^"]*)"$`, s.iEvictClientFromGroup)
	sc.Step(`^I allow group "([^"]*)" access to secret "([^"]*)"$`, s.iAllowGroupAccessToSecret)
	sc.Step(`^I revoke group "([^"]*)" access to secret "([^"]*)"$`, s.iRevokeGroupAccessToSecret)
	sc.Step(`^I enroll client id (\d+) in group id (\d+)$`, s.iEnrollClientIDInGroupID)

	// Query steps
	sc.Step(`^I list the secrets for client "([^"]*)"$`, s.iListTheSecretsForClient)
	sc.Step(`^I fetch secret "([^"]*)" for client "([^"]*)"$`, s.iFetchSecretForClient)
	sc.Step(`^I list the groups for client "([^"]*)"$`, s.iListTheGroupsForClient)

	// Assertion steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response should list secret "([^"]*)" once with groups "([^"]*)"$`, s.theResponseShouldListSecretOnceWithGroups)
	sc.Step(`^the response should not list secret "([^"]*)"$`, s.theResponseShouldNotListSecret)
	sc.Step(`^the response should be identical to the previous response$`, s.theResponseShouldBeIdenticalToThePrevious)
	sc.Step(`^there should be (\d+) membership rows$`, s.thereShouldBeMembershipRows)
	sc.Step(`^there should be (\d+) grant rows$`, s.thereShouldBeGrantRows)
}

// Background steps

func (s *StepsContext) aKeywhizServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

func (s *StepsContext) anEmptyAccessControlState() error {
	// TRUNCATE cascades into memberships and accessgrants
	return s.tc.DB.Exec(`TRUNCATE clients, groups, secrets CASCADE`).Error
}

// doRequest performs a request and records status and body, shifting the
// previous response so scenarios can compare consecutive responses.
func (s *StepsContext) doRequest(method, path string, body io.Reader) error {
	req, err := http.NewRequest(method, s.tc.ServerURL+path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Keywhiz-Creator", "integration")

	if s.response != nil {
		s.prevStatus = s.response.StatusCode
		s.prevBody = s.responseBody
	}

	s.response, err = s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}

	s.responseBody, err = io.ReadAll(s.response.Body)
	_ = s.response.Body.Close()
	return err
}

// Entity steps

func (s *StepsContext) createEntity(kind, name string) error {
	payload, _ := json.Marshal(map[string]string{"name": name})
	return s.doRequest("POST", "/"+kind, bytes.NewReader(payload))
}

func (s *StepsContext) iCreateAClient(name string) error {
	return s.createEntity("clients", name)
}

func (s *StepsContext) iCreateAGroup(name string) error {
	return s.createEntity("groups", name)
}

func (s *StepsContext) iCreateASecret(name string) error {
	return s.createEntity("secrets", name)
}

func (s *StepsContext) iDeleteTheClient(name string) error {
	return s.doRequest("DELETE", "/clients/"+name, nil)
}

func (s *StepsContext) iDeleteTheGroup(name string) error {
	return s.doRequest("DELETE", "/groups/"+name, nil)
}

func (s *StepsContext) iDeleteTheSecret(name string) error {
	return s.doRequest("DELETE", "/secrets/"+name, nil)
}

// entityID resolves an entity name to its database id
func (s *StepsContext) entityID(table, name string) (int64, error) {
	var id int64
	err := s.tc.DB.Raw(fmt.Sprintf(`SELECT id FROM %s WHERE name = ?`, table), name).Scan(&id).Error
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, fmt.Errorf("no %s named %q", table, name)
	}
	return id, nil
}

// Membership and grant steps

func (s *StepsContext) iEnrollClientInGroup(clientName, groupName string) error {
	clientID, err := s.entityID("clients", clientName)
	if err != nil {
		return err
	}
	groupID, err := s.entityID("groups", groupName)
	if err != nil {
		return err
	}
	return s.doRequest("PUT", fmt.Sprintf("/memberships/clients/%d/groups/%d", clientID, groupID), nil)
}

func (s *StepsContext) iEvictClientFromGroup(clientName, groupName string) error {
	clientID, err := s.entityID("clients", clientName)
	if err != nil {
		return err
	}
	groupID, err := s.entityID("groups", groupName)
	if err != nil {
		return err
	}
	return s.doRequest("DELETE", fmt.Sprintf("/memberships/clients/%d/groups/%d", clientID, groupID), nil)
}

func (s *StepsContext) iAllowGroupAccessToSecret(groupName, secretName string) error {
	secretID, err := s.entityID("secrets", secretName)
	if err != nil {
		return err
	}
	groupID, err := s.entityID("groups", groupName)
	if err != nil {
		return err
	}
	return s.doRequest("PUT", fmt.Sprintf("/memberships/secrets/%d/groups/%d", secretID, groupID), nil)
}

func (s *StepsContext) iRevokeGroupAccessToSecret(groupName, secretName string) error {
	secretID, err := s.entityID("secrets", secretName)
	if err != nil {
		return err
	}
	groupID, err := s.entityID("groups", groupName)
	if err != nil {
		return err
	}
	return s.doRequest("DELETE", fmt.Sprintf("/memberships/secrets/%d/groups/%d", secretID, groupID), nil)
}

func (s *StepsContext) iEnrollClientIDInGroupID(clientID, groupID int) error {
	return s.doRequest("PUT", fmt.Sprintf("/memberships/clients/%d/groups/%d", clientID, groupID), nil)
}

// Query steps

func (s *StepsContext) iListTheSecretsForClient(name string) error {
	return s.doRequest("GET", "/clients/"+name+"/secrets", nil)
}

func (s *StepsContext) iFetchSecretForClient(secretName, clientName string) error {
	return s.doRequest("GET", "/clients/"+clientName+"/secrets/"+secretName, nil)
}

func (s *StepsContext) iListTheGroupsForClient(name string) error {
	return s.doRequest("GET", "/clients/"+name+"/groups", nil)
}

// Assertion steps

func (s *StepsContext) theResponseStatusShouldBe(expectedStatus int) error {
	if s.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d: %s", expectedStatus, s.response.StatusCode, string(s.responseBody))
	}
	return nil
}

type sanitizedSecretResponse struct {
	Name   string   `json:"name"`
	Groups []string `json:"groups"`
}

func (s *StepsContext) theResponseShouldListSecretOnceWithGroups(secretName, groupList string) error {
	var secrets []sanitizedSecretResponse
	if err := json.Unmarshal(s.responseBody, &secrets); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	var matches []sanitizedSecretResponse
	for _, sec := range secrets {
		if sec.Name == secretName {
			matches = append(matches, sec)
		}
	}
	if len(matches) != 1 {
		return fmt.Errorf("expected secret %q exactly once, found %d times in %s", secretName, len(matches), string(s.responseBody))
	}

	expected := strings.Split(groupList, ",")
	if len(matches[0].Groups) != len(expected) {
		return fmt.Errorf("expected groups %v, got %v", expected, matches[0].Groups)
	}
	for i, g := range expected {
		if matches[0].Groups[i] != g {
			return fmt.Errorf("expected groups %v, got %v", expected, matches[0].Groups)
		}
	}
	return nil
}

func (s *StepsContext) theResponseShouldNotListSecret(secretName string) error {
	var secrets []sanitizedSecretResponse
	if err := json.Unmarshal(s.responseBody, &secrets); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	for _, sec := range secrets {
		if sec.Name == secretName {
			return fmt.Errorf("secret %q should not be listed: %s", secretName, string(s.responseBody))
		}
	}
	return nil
}

func (s *StepsContext) theResponseShouldBeIdenticalToThePrevious() error {
	if s.prevStatus == 0 {
		return fmt.Errorf("no previous response to compare against")
	}
	if s.response.StatusCode != s.prevStatus {
		return fmt.Errorf("status differs: %d vs %d", s.prevStatus, s.response.StatusCode)
	}
	if !bytes.Equal(s.prevBody, s.responseBody) {
		return fmt.Errorf("body differs: %q vs %q", string(s.prevBody), string(s.responseBody))
	}
	return nil
}

func (s *StepsContext) countRows(table string, expected int) error {
	var count int64
	if err := s.tc.DB.Raw(fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)).Scan(&count).Error; err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d rows in %s, got %d", expected, table, count)
	}
	return nil
}

func (s *StepsContext) thereShouldBeMembershipRows(expected int) error {
	return s.countRows("memberships", expected)
}

func (s *StepsContext) thereShouldBeGrantRows(expected int) error {
	return s.countRows("accessgrants", expected)
}
