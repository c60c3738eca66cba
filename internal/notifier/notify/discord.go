package notify

import (
	"context"
	"fmt"
	"strconv"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/disgo/webhook"

	"github.com/dimasma0305/teams-notifier/internal/notifier/errors"
)

const defaultEmbedColor = 0x0075FF

type discordSender struct {
	client *webhook.Client
}

func newDiscordSender(url string, opts ...webhook.ConfigOpt) (*discordSender, error) {
	client, err := webhook.NewWithURL(url, opts...)
	if err != nil {
		return nil, errors.Kind(errors.ErrConfigParse, fmt.Errorf("failed to create webhook client: %w", err))
	}
	return &discordSender{client: client}, nil
}

// Send posts the deployment as a single embed
func (s *discordSender) Send(ctx context.Context, d Deployment) error {
	if _, err := s.client.CreateEmbeds([]discord.Embed{BuildEmbed(d)}, rest.WithCtx(ctx)); err != nil {
		return errors.Kind(errors.ErrNotificationSend, err)
	}
	return nil
}

// BuildEmbed creates the Discord embed for a deployment
func BuildEmbed(d Deployment) discord.Embed {
	builder := discord.NewEmbedBuilder().
		SetTitle(fmt.Sprintf("New %s site deployed", d.ProjectName)).
		SetURL(d.URL).
		SetDescription(d.Summary()).
		SetColor(embedColor(d.ThemeColor)).
		SetTimestamp(d.DeployedAt)

	for _, fact := range d.Facts() {
		builder.AddField(fact.Name, fact.Value, false)
	}
	return builder.Build()
}

func embedColor(hex string) int {
	v, err := strconv.ParseInt(hex, 16, 32)
	if err != nil || v < 0 || v > 0xFFFFFF {
		return defaultEmbedColor
	}
	return int(v)
}
