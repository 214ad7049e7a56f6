package content

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pixeldesignindia/organic-api/models"
	"github.com/pixeldesignindia/organic-api/responses"
	"github.com/pixeldesignindia/organic-api/services"
)

const requestTimeout = 10 * time.Second

type Controller struct {
	content  *services.ContentService
	validate *validator.Validate
}

func NewController(content *services.ContentService, validate *validator.Validate) *Controller {
	return &Controller{content: content, validate: validate}
}

type bannerRequest struct {
	Title    string `json:"title" validate:"required"`
	Image    string `json:"image"`
	LinkURL  string `json:"link_url"`
	Position int    `json:"position"`
}

func (ctl *Controller) CreateBanner(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	var req bannerRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request body")
	}
	if err := ctl.validate.Struct(&req); err != nil {
		return responses.BadRequest(c, err.Error())
	}
	banner, err := ctl.content.CreateBanner(ctx, models.Banner{
		Title:    req.Title,
		LinkURL:  req.LinkURL,
		Position: req.Position,
	}, req.Image)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Banner created successfully", &fiber.Map{"banner": banner})
}

func (ctl *Controller) ListBanners(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	banners, err := ctl.content.ListBanners(ctx)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Banners fetched successfully", &fiber.Map{"banners": banners})
}

// bannerUpdateFields keeps only the attributes the caller actually sent.
// Position is a pointer so moving a banner to slot zero still counts.
func bannerUpdateFields(title, linkURL string, position *int) bson.M {
	fields := bson.M{}
	if title != "" {
		fields["title"] = title
	}
	if linkURL != "" {
		fields["link_url"] = linkURL
	}
	if position != nil {
		fields["position"] = *position
	}
	return fields
}

func (ctl *Controller) UpdateBanner(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid ID format")
	}

	var req struct {
		Title    string `json:"title"`
		LinkURL  string `json:"link_url"`
		Position *int   `json:"position"`
	}
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request body")
	}

	fields := bannerUpdateFields(req.Title, req.LinkURL, req.Position)
	if len(fields) == 0 {
		return responses.BadRequest(c, "Nothing to update")
	}
	if err := ctl.content.UpdateBanner(ctx, id, fields); err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Banner updated successfully", nil)
}

func (ctl *Controller) DeleteBanner(c *fiber.Ctx) error {
	return ctl.deleteByID(c, ctl.content.DeleteBanner, "Banner deleted successfully")
}

func (ctl *Controller) CreateFAQ(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	var faq models.FAQ
	if err := c.BodyParser(&faq); err != nil {
		return responses.BadRequest(c, "Invalid request body")
	}
	if err := ctl.validate.Struct(&faq); err != nil {
		return responses.BadRequest(c, err.Error())
	}
	created, err := ctl.content.CreateFAQ(ctx, faq)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "FAQ created successfully", &fiber.Map{"faq": created})
}

func (ctl *Controller) ListFAQs(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	faqs, err := ctl.content.ListFAQs(ctx)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "FAQs fetched successfully", &fiber.Map{"faqs": faqs})
}

func faqUpdateFields(question, answer string, position *int) bson.M {
	fields := bson.M{}
	if question != "" {
		fields["question"] = question
	}
	if answer != "" {
		fields["answer"] = answer
	}
	if position != nil {
		fields["position"] = *position
	}
	return fields
}

func (ctl *Controller) UpdateFAQ(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid ID format")
	}

	var req struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
		Position *int   `json:"position"`
	}
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request body")
	}

	fields := faqUpdateFields(req.Question, req.Answer, req.Position)
	if len(fields) == 0 {
		return responses.BadRequest(c, "Nothing to update")
	}
	if err := ctl.content.UpdateFAQ(ctx, id, fields); err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "FAQ updated successfully", nil)
}

func (ctl *Controller) DeleteFAQ(c *fiber.Ctx) error {
	return ctl.deleteByID(c, ctl.content.DeleteFAQ, "FAQ deleted successfully")
}

func (ctl *Controller) CreateIntro(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	var intro models.Intro
	if err := c.BodyParser(&intro); err != nil {
		return responses.BadRequest(c, "Invalid request body")
	}
	if err := ctl.validate.Struct(&intro); err != nil {
		return responses.BadRequest(c, err.Error())
	}
	created, err := ctl.content.CreateIntro(ctx, intro)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Intro created successfully", &fiber.Map{"intro": created})
}

func (ctl *Controller) ListIntros(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	intros, err := ctl.content.ListIntros(ctx)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Intros fetched successfully", &fiber.Map{"intros": intros})
}

func introUpdateFields(title, body string, position *int) bson.M {
	fields := bson.M{}
	if title != "" {
		fields["title"] = title
	}
	if body != "" {
		fields["body"] = body
	}
	if position != nil {
		fields["position"] = *position
	}
	return fields
}

func (ctl *Controller) UpdateIntro(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid ID format")
	}

	var req struct {
		Title    string `json:"title"`
		Body     string `json:"body"`
		Position *int   `json:"position"`
	}
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request body")
	}

	fields := introUpdateFields(req.Title, req.Body, req.Position)
	if len(fields) == 0 {
		return responses.BadRequest(c, "Nothing to update")
	}
	if err := ctl.content.UpdateIntro(ctx, id, fields); err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Intro updated successfully", nil)
}

func (ctl *Controller) DeleteIntro(c *fiber.Ctx) error {
	return ctl.deleteByID(c, ctl.content.DeleteIntro, "Intro deleted successfully")
}

type configurationRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value"`
}

func (ctl *Controller) SetConfiguration(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	var req configurationRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request body")
	}
	if err := ctl.validate.Struct(&req); err != nil {
		return responses.BadRequest(c, err.Error())
	}
	if err := ctl.content.SetConfiguration(ctx, req.Key, req.Value); err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Configuration saved successfully", nil)
}

func (ctl *Controller) GetConfiguration(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	cfg, err := ctl.content.GetConfiguration(ctx, c.Params("key"))
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Configuration fetched successfully", &fiber.Map{"configuration": cfg})
}

func (ctl *Controller) deleteByID(c *fiber.Ctx, del func(context.Context, primitive.ObjectID) error, message string) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid ID format")
	}
	if err := del(ctx, id); err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, message, nil)
}
