package ganttify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Failure kinds for invite resolution and task fetches. Handlers reply to the
// user on the first two; the dispatcher logs and skips on ErrUpstream.
var (
	ErrInvalidInvite   = errors.New("invalid invite link")
	ErrProjectNotFound = errors.New("project not found")
	ErrUpstream        = errors.New("ganttify api unavailable")
	ErrBadTaskID       = errors.New("malformed task id")
)

// Client talks to the Ganttify HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client rooted at baseURL, e.g. "http://localhost:3000/".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// ResolveInvite decodes an invite link into the project it belongs to. The
// token is opaque to the bot; the API decodes it and returns the project
// document, or 400/404 when the link is bad or the project is gone.
func (c *Client) ResolveInvite(ctx context.Context, inviteLink string) (Project, error) {
	route := c.baseURL + "/api/get-project-by-link/" + url.PathEscape(inviteLink)

	resp, err := c.get(ctx, route)
	if err != nil {
		return Project{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest:
		return Project{}, ErrInvalidInvite
	case http.StatusNotFound:
		return Project{}, ErrProjectNotFound
	default:
		return Project{}, fmt.Errorf("%w: get-project-by-link returned %d", ErrUpstream, resp.StatusCode)
	}

	var project Project
	if err := json.NewDecoder(resp.Body).Decode(&project); err != nil {
		return Project{}, fmt.Errorf("%w: decoding project: %v", ErrUpstream, err)
	}
	if project.ID == "" {
		return Project{}, fmt.Errorf("%w: project document has no id", ErrUpstream)
	}
	return project, nil
}

// FetchTasks fetches the task documents for a batch of ids in one round trip.
// An empty batch short-circuits to an empty result without touching the
// network. Every id must be a valid ObjectID hex; a malformed one fails the
// call with ErrBadTaskID before any request is made.
func (c *Client) FetchTasks(ctx context.Context, taskIDs []string) ([]Task, error) {
	if len(taskIDs) == 0 {
		return nil, nil
	}
	for _, id := range taskIDs {
		if _, err := primitive.ObjectIDFromHex(id); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadTaskID, id)
		}
	}

	route := c.baseURL + "/api/getTasksById/" + strings.Join(taskIDs, ",")

	resp, err := c.get(ctx, route)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: getTasksById returned %d", ErrUpstream, resp.StatusCode)
	}

	var tasks []Task
	if err := json.NewDecoder(resp.Body).Decode(&tasks); err != nil {
		return nil, fmt.Errorf("%w: decoding tasks: %v", ErrUpstream, err)
	}
	return tasks, nil
}

func (c *Client) get(ctx context.Context, route string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, route, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return resp, nil
}
