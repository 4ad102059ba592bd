package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNewPostEmail(t *testing.T) {
	body, err := renderNewPostEmail(NewPostEmailData{
		PostTitle:       "Hello World",
		PostDescription: "First post",
		PostURL:         "https://blog.example.com/posts/hello-world",
		PostImage:       "https://blog.example.com/images/hello.png",
		UnsubscribeURL:  "https://blog.example.com/unsubscribe?email=a%40x.com",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "New Post Published!")
	assert.Contains(t, body, "Hello World")
	assert.Contains(t, body, "First post")
	assert.Contains(t, body, `href="https://blog.example.com/posts/hello-world"`)
	assert.Contains(t, body, "https://blog.example.com/images/hello.png")
	assert.Contains(t, body, "https://blog.example.com/unsubscribe?email=a%40x.com")
	assert.Contains(t, body, "Unsubscribe")
}

func TestRenderNewPostEmail_OptionalFieldsOmitted(t *testing.T) {
	body, err := renderNewPostEmail(NewPostEmailData{
		PostTitle:      "Hello World",
		PostURL:        "https://blog.example.com/posts/hello-world",
		UnsubscribeURL: "https://blog.example.com/unsubscribe?email=a%40x.com",
	})
	require.NoError(t, err)

	assert.NotContains(t, body, "<img")
	assert.Contains(t, body, "Read Full Post")
}

func TestRenderNewPostEmail_EscapesHTML(t *testing.T) {
	body, err := renderNewPostEmail(NewPostEmailData{
		PostTitle:      `<script>alert("x")</script>`,
		PostURL:        "https://blog.example.com/p",
		UnsubscribeURL: "https://blog.example.com/unsubscribe",
	})
	require.NoError(t, err)

	assert.NotContains(t, body, "<script>")
}
