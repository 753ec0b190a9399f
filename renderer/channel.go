package renderer

import (
	"encoding/json"

	"github.com/use-agent/tubescrape/models"
)

// avatarIndex picks the second avatar rendition: large enough for a list
// view, smaller than the profile-page size.
const avatarIndex = 1

// MapChannel maps the fields of a c4TabbedHeaderRenderer. Each field is
// resolved independently; the returned errors name the fields that were
// missing or malformed, and the info is still returned with those fields
// left zero.
func MapChannel(fields map[string]json.RawMessage) (*models.ChannelInfo, []error) {
	var (
		info models.ChannelInfo
		errs []error
	)

	if id, err := field[string](fields, "channelId"); err != nil {
		errs = append(errs, err)
	} else {
		info.ID = id
	}

	if title, err := field[string](fields, "title"); err != nil {
		errs = append(errs, err)
	} else {
		info.Title = title
	}

	if avatar, err := field[ThumbnailList](fields, "avatar"); err != nil {
		errs = append(errs, err)
	} else if len(avatar.Thumbnails) <= avatarIndex {
		errs = append(errs, missing("avatar.thumbnails[1]"))
	} else {
		info.Avatar = toModel(avatar.Thumbnails[avatarIndex])
	}

	if banner, err := field[ThumbnailList](fields, "banner"); err != nil {
		errs = append(errs, err)
	} else if t, ok := last(banner.Thumbnails); !ok {
		errs = append(errs, missing("banner.thumbnails"))
	} else {
		info.Banner = toModel(t)
	}

	if subs, err := field[Text](fields, "subscriberCountText"); err != nil {
		errs = append(errs, err)
	} else if subs.SimpleText == nil {
		errs = append(errs, missing("subscriberCountText.simpleText"))
	} else {
		info.SubscriberCount = *subs.SimpleText
	}

	return &info, errs
}

func toModel(t Thumbnail) *models.Thumbnail {
	return &models.Thumbnail{URL: t.URL, Width: t.Width, Height: t.Height}
}
