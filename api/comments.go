package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/PriyanshAroraa/CreatorPulse/model"
)

// ListComments returns a filtered, paginated comment listing for a channel.
func (c *Client) ListComments(ctx context.Context, channelID string, filter model.CommentFilter) (*model.PaginatedComments, error) {
	params := url.Values{}
	if filter.Sentiment != "" {
		params.Set("sentiment", string(filter.Sentiment))
	}
	if filter.Tags != "" {
		params.Set("tags", filter.Tags)
	}
	if filter.VideoID != "" {
		params.Set("video_id", filter.VideoID)
	}
	if filter.IsBookmarked != nil {
		params.Set("is_bookmarked", strconv.FormatBool(*filter.IsBookmarked))
	}
	if filter.DateFrom != "" {
		params.Set("date_from", filter.DateFrom)
	}
	if filter.DateTo != "" {
		params.Set("date_to", filter.DateTo)
	}
	if filter.Search != "" {
		params.Set("search", filter.Search)
	}
	if filter.Page > 0 {
		params.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		params.Set("limit", strconv.Itoa(filter.Limit))
	}

	var page model.PaginatedComments
	endpoint := withQuery("/comments/channel/"+url.PathEscape(channelID), params)
	if err := c.get(ctx, endpoint, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetComment returns one comment.
func (c *Client) GetComment(ctx context.Context, commentID string) (*model.Comment, error) {
	var comment model.Comment
	if err := c.get(ctx, "/comments/"+url.PathEscape(commentID), &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// SetBookmark toggles a comment's bookmark flag.
func (c *Client) SetBookmark(ctx context.Context, commentID string, bookmarked bool) error {
	body := map[string]bool{"is_bookmarked": bookmarked}
	return c.do(ctx, http.MethodPatch, "/comments/"+url.PathEscape(commentID)+"/bookmark", body, nil)
}

// SetCommentTags replaces the tag list on a comment.
func (c *Client) SetCommentTags(ctx context.Context, commentID string, tags []string) error {
	body := map[string][]string{"tags": tags}
	return c.do(ctx, http.MethodPatch, "/comments/"+url.PathEscape(commentID)+"/tags", body, nil)
}

// ListBookmarked returns bookmarked comments for a channel.
func (c *Client) ListBookmarked(ctx context.Context, channelID string, page, limit int) (*model.PaginatedComments, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(orDefault(page, 1)))
	params.Set("limit", strconv.Itoa(orDefault(limit, 50)))

	var result model.PaginatedComments
	endpoint := withQuery("/comments/bookmarked/"+url.PathEscape(channelID), params)
	if err := c.get(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListTags returns the user's tag definitions.
func (c *Client) ListTags(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	if err := c.get(ctx, "/tags", &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateTag defines a new comment tag.
func (c *Client) CreateTag(ctx context.Context, name, color, description string) (*model.Tag, error) {
	body := map[string]string{"name": name, "color": color}
	if description != "" {
		body["description"] = description
	}
	var tag model.Tag
	if err := c.do(ctx, http.MethodPost, "/tags", body, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// UpdateTag changes a tag's color or description. Empty fields are left
// untouched by the backend.
func (c *Client) UpdateTag(ctx context.Context, tagName, color, description string) (*model.Tag, error) {
	body := map[string]string{}
	if color != "" {
		body["color"] = color
	}
	if description != "" {
		body["description"] = description
	}
	var tag model.Tag
	if err := c.do(ctx, http.MethodPatch, "/tags/"+url.PathEscape(tagName), body, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteTag removes a tag definition.
func (c *Client) DeleteTag(ctx context.Context, tagName string) error {
	return c.do(ctx, http.MethodDelete, "/tags/"+url.PathEscape(tagName), nil, nil)
}
