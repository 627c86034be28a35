package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dghubble/oauth1"
)

const tweetEndpoint = "https://api.twitter.com/2/tweets"

// TweetPoster publishes short announcements. Implementations are expected to
// be best-effort; callers log and swallow failures.
type TweetPoster interface {
	PostTweet(ctx context.Context, text string) error
}

type TwitterConfig struct {
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	AccessSecret   string
}

func (c TwitterConfig) Configured() bool {
	return c.ConsumerKey != "" && c.ConsumerSecret != "" && c.AccessToken != "" && c.AccessSecret != ""
}

type twitterService struct {
	client *http.Client
}

// NewTwitterService returns a poster backed by the Twitter v2 API, or a
// no-op poster when credentials are absent.
func NewTwitterService(cfg TwitterConfig) TweetPoster {
	if !cfg.Configured() {
		return &noopTweetPoster{}
	}

	config := oauth1.NewConfig(cfg.ConsumerKey, cfg.ConsumerSecret)
	token := oauth1.NewToken(cfg.AccessToken, cfg.AccessSecret)
	client := config.Client(oauth1.NoContext, token)
	client.Timeout = 10 * time.Second

	return &twitterService{client: client}
}

func (t *twitterService) PostTweet(ctx context.Context, text string) error {
	runes := []rune(text)
	if len(runes) > 280 {
		text = string(runes[:277]) + "..."
	}

	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tweetEndpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("tweet failed with status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

type noopTweetPoster struct{}

func (n *noopTweetPoster) PostTweet(ctx context.Context, text string) error {
	return nil
}
