package twitter_fx

import (
	"os"

	"go.uber.org/fx"

	"yournews/internal/services"
)

var Module = fx.Provide(provideTweetPoster)

// Falls back to a no-op poster when credentials are missing; article
// approval never depends on Twitter being reachable.
func provideTweetPoster() services.TweetPoster {
	return services.NewTwitterService(services.TwitterConfig{
		ConsumerKey:    os.Getenv("TWITTER_API_KEY"),
		ConsumerSecret: os.Getenv("TWITTER_API_SECRET"),
		AccessToken:    os.Getenv("TWITTER_ACCESS_TOKEN"),
		AccessSecret:   os.Getenv("TWITTER_ACCESS_TOKEN_SECRET"),
	})
}
