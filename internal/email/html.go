package email

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"cardstudio/internal/domain"
)

// Subject builds the subject line for a celebration email. The admin
// variant announces the celebrant instead of addressing them.
func Subject(name string, c domain.Celebration, admin bool) string {
	if admin {
		switch {
		case c.IsBirthday && c.IsWorkAnniversary:
			return fmt.Sprintf("🎉 Today is %s's Birthday & Work Anniversary!", name)
		case c.IsBirthday:
			return fmt.Sprintf("🎉 Today is %s's Birthday!", name)
		default:
			return fmt.Sprintf("🎉 Today is %s's Work Anniversary!", name)
		}
	}
	switch {
	case c.IsBirthday && c.IsWorkAnniversary:
		return fmt.Sprintf("🎉 Happy Birthday & Work Anniversary %s!", name)
	case c.IsBirthday:
		return fmt.Sprintf("🎉 Happy Birthday %s!", name)
	default:
		return fmt.Sprintf("🎉 Happy Work Anniversary %s!", name)
	}
}

func title(name string, c domain.Celebration, admin bool) string {
	if admin {
		return fmt.Sprintf("Today we're celebrating %s!", name)
	}
	switch {
	case c.IsBirthday && c.IsWorkAnniversary:
		return fmt.Sprintf("Happy Birthday & Work Anniversary %s!", name)
	case c.IsBirthday:
		return fmt.Sprintf("Happy Birthday %s!", name)
	default:
		return fmt.Sprintf("Happy Work Anniversary %s!", name)
	}
}

func contentSection(p Poster) string {
	if strings.HasPrefix(p.ImageURL, "data:image") || strings.HasPrefix(p.ImageURL, "http") {
		src := p.ImageURL
		if u, err := url.Parse(src); err == nil {
			src = u.String()
		}
		return fmt.Sprintf(`<img src="%s" alt="Celebration card" style="display:block;max-width:100%%;height:auto;border-radius:8px;margin:0 auto"/>`, html.EscapeString(src))
	}

	message := p.Message
	if message == "" {
		message = p.ImageURL
	}
	lines := strings.Split(html.EscapeString(message), "\n")
	return fmt.Sprintf(`<div style="background:#f5f5f5;padding:30px;border-radius:8px;margin:20px 0">
  <p style="margin:0;color:#444;font-size:18px;line-height:1.6;text-align:center">%s</p>
</div>`, strings.Join(lines, "<br/>"))
}

// Body renders the full HTML document for a celebration email using the
// fixed single-column table layout most mail clients can display.
func Body(msg CelebrationEmail) string {
	footer := "This message was created especially for you by CardStudio"
	if msg.Admin {
		footer = "This is an automated notification from CardStudio"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <head><meta charset="utf-8"></head>
  <body style="margin:0;padding:0">
    <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="background:#f8f8f8">
      <tr>
        <td align="center" style="padding:40px 0">
          <table width="600" cellpadding="0" cellspacing="0" border="0" style="background:#ffffff;border-radius:8px;box-shadow:0 2px 8px rgba(0,0,0,0.1);font-family:Arial,sans-serif">
            <tr>
              <td align="center" style="padding:40px">
                <h1 style="color:#333;margin:0 0 30px 0;font-size:24px">%s</h1>
                %s
                <div style="margin-top:30px;text-align:center">
                  <p style="color:#666;margin:0 0 10px 0;font-size:16px">%s</p>
                  <p style="color:#999;font-size:14px;margin:0">Spreading joy, one celebration at a time 🎉</p>
                </div>
              </td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>`, html.EscapeString(title(msg.Name, msg.Celebration, msg.Admin)), contentSection(msg.Poster), footer)
}
