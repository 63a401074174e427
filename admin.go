package agencykit

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	ok, err := a.Gate.Authenticate(c.FormValue("password"))
	if err != nil {
		return err
	}
	if !ok {
		return Render(c, a.Views.AdminLogin(true, CsrfToken(c)))
	}
	if err := setAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminLogout(c echo.Context) error {
	if err := a.Gate.SignOut(); err != nil {
		return err
	}
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

// handleAdminCreatePost creates a post from the editor form. An omitted
// cover image falls back to the deterministic placeholder derived from the
// title.
func (a *App) handleAdminCreatePost(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return c.Redirect(http.StatusSeeOther, "/admin/?msg=Title+is+required.")
	}
	tags := FilterEmpty(strings.Split(c.FormValue("tags"), ","))
	author := strings.TrimSpace(c.FormValue("author"))
	if author == "" {
		author = a.Config.Author
	}
	cover := strings.TrimSpace(c.FormValue("coverImage"))
	if cover == "" {
		cover = CoverImageURL(title)
	}
	if _, err := a.Posts.Create(BlogPost{
		Title:      title,
		Summary:    c.FormValue("summary"),
		Content:    c.FormValue("content"),
		CoverImage: cover,
		Author:     author,
		Tags:       tags,
	}); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return a.renderAdminDashboard(c, "published")
}

// handleAdminDraft asks the generator for a blog draft and returns it as
// JSON for the editor to merge. Unlike the workflow and agent endpoints
// there is no canned fallback: without a credential this fails.
func (a *App) handleAdminDraft(c echo.Context) error {
	if !IsAdmin(c) {
		return c.NoContent(http.StatusForbidden)
	}
	topic := strings.TrimSpace(c.FormValue("topic"))
	if topic == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Topic is required"})
	}
	draft, err := a.Generator.GeneratePostDraft(c.Request().Context(), topic)
	if err != nil {
		c.Logger().Errorf("generate post draft: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to generate content"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"draft":      draft,
		"coverImage": CoverImageURL(draft.Title),
	})
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	posts, err := a.Posts.List()
	if err != nil {
		return err
	}
	messages, err := a.Contact.List()
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminDashboard(posts, messages, msg, CsrfToken(c)))
}

func (a *App) handleImageUpload(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.String(http.StatusBadRequest, "No image file provided")
	}
	if file.Size > maxUploadSize {
		return c.String(http.StatusBadRequest, "File too large (max 10MB)")
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	img, data, err := processImage(src, file.Filename)
	if err != nil {
		return c.String(http.StatusBadRequest, "Invalid image: "+err.Error())
	}

	a.ensureUniqueFilename(&img)

	dir := filepath.Join(a.staticDir, uploadsSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create uploads dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, img.Filename), data, 0o644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	if err := a.Images.Save(img); err != nil {
		return err
	}

	return a.renderImageList(c)
}

func (a *App) handleImageDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}

	filename := c.Param("filename")
	if filename == "" {
		return c.String(http.StatusBadRequest, "Filename required")
	}

	_ = os.Remove(filepath.Join(a.staticDir, uploadsSubdir, filename)) // file may already be gone

	if err := a.Images.Delete(filename); err != nil {
		return err
	}

	return a.renderImageList(c)
}

func (a *App) handleImageList(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return a.renderImageList(c)
}

func (a *App) renderImageList(c echo.Context) error {
	images, err := a.Images.List()
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminImages(images, CsrfToken(c)))
}
