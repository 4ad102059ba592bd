package email

import (
	"bytes"
	"html/template"
)

// HTML body of the new-post notification. Layout: heading, optional cover
// image, title, optional description, a "Read Full Post" button, and an
// unsubscribe footer.
const newPostTemplate = `<!DOCTYPE html>
<html>
<body style="background-color:#f6f9fc;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,'Helvetica Neue',Ubuntu,sans-serif;">
  <div style="background-color:#ffffff;margin:0 auto;max-width:580px;padding:40px 32px;border-radius:8px;">
    <h1 style="color:#1a1a1a;font-size:24px;font-weight:700;margin:0 0 24px;">New Post Published!</h1>
    {{if .PostImage}}
    <div style="margin-bottom:24px;">
      <img src="{{.PostImage}}" alt="{{.PostTitle}}" style="width:100%;border-radius:8px;" />
    </div>
    {{end}}
    <h2 style="color:#1a1a1a;font-size:20px;font-weight:600;margin:0 0 16px;">{{.PostTitle}}</h2>
    {{if .PostDescription}}
    <p style="color:#525252;font-size:16px;line-height:24px;margin:0 0 24px;">{{.PostDescription}}</p>
    {{end}}
    <div style="text-align:center;margin:32px 0;">
      <a href="{{.PostURL}}" style="background-color:#1a1a1a;border-radius:6px;color:#ffffff;display:inline-block;font-size:16px;font-weight:600;padding:12px 32px;text-decoration:none;">Read Full Post</a>
    </div>
    <p style="color:#8898aa;font-size:12px;line-height:18px;margin:32px 0 0;">
      You received this email because you subscribed to our newsletter.<br />
      <a href="{{.UnsubscribeURL}}" style="color:#8898aa;text-decoration:underline;">Unsubscribe</a>
    </p>
  </div>
</body>
</html>`

var newPostTmpl = template.Must(template.New("new-post").Parse(newPostTemplate))

func renderNewPostEmail(data NewPostEmailData) (string, error) {
	var buf bytes.Buffer
	if err := newPostTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
