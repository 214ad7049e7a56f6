package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/pixeldesignindia/organic-api/apperror"
	"github.com/pixeldesignindia/organic-api/configs"
	"github.com/pixeldesignindia/organic-api/models"
	"github.com/pixeldesignindia/organic-api/storage"
	"github.com/pixeldesignindia/organic-api/utils"
)

type UserService struct {
	users    *mongo.Collection
	uploader *storage.Uploader
	cfg      configs.Config
	now      func() time.Time
}

func NewUserService(db *mongo.Database, uploader *storage.Uploader, cfg configs.Config) *UserService {
	return &UserService{
		users:    db.Collection("users"),
		uploader: uploader,
		cfg:      cfg,
		now:      time.Now,
	}
}

type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Mobile    string `json:"mobile"`
}

// Register creates a customer account. A duplicate email is a conflict.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	var existing models.User
	err := s.users.FindOne(ctx, bson.M{"email": req.Email, "is_deleted": false}).Decode(&existing)
	if err == nil {
		return nil, apperror.Conflict("User with same email already exists")
	}
	if err != mongo.ErrNoDocuments {
		return nil, apperror.Internal("Error checking user existence")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal("Error hashing password")
	}

	now := s.now()
	user := models.User{
		Base: models.Base{
			ID:        primitive.NewObjectID(),
			UniqueID:  utils.UniqueID(),
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashed),
		Mobile:    req.Mobile,
		UserType:  models.UserTypeCustomer,
		Followers: []models.Interaction{},
		Following: []models.Interaction{},
	}

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		return nil, apperror.Internal("Error in saving user, please try again later")
	}
	user.Password = ""
	return &user, nil
}

// Login checks credentials and issues the token pair.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, utils.TokenPair, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email, "is_deleted": false}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, utils.TokenPair{}, apperror.BadRequest("User with this account does not exist")
	}
	if err != nil {
		return nil, utils.TokenPair{}, apperror.Internal("Error fetching from database")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, utils.TokenPair{}, apperror.BadRequest("Incorrect password")
	}

	pair, err := utils.IssueTokenPair(user.ID.Hex(), s.cfg.JWTSecret, s.cfg.RefreshSecret, s.cfg.JWTExpiry, s.cfg.RefreshExpiry)
	if err != nil {
		return nil, utils.TokenPair{}, apperror.Internal("Error while generating jwt token")
	}
	user.Password = ""
	return &user, pair, nil
}

// Refresh re-issues the token pair from a valid refresh token.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (utils.TokenPair, error) {
	userID, err := utils.VerifyToken(refreshToken, s.cfg.RefreshSecret)
	if err != nil {
		return utils.TokenPair{}, err
	}
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return utils.TokenPair{}, apperror.Unauthorized("Invalid token subject")
	}
	if err := s.users.FindOne(ctx, bson.M{"_id": objectID, "is_deleted": false}).Err(); err != nil {
		return utils.TokenPair{}, apperror.Unauthorized("User no longer exists")
	}
	return utils.IssueTokenPair(userID, s.cfg.JWTSecret, s.cfg.RefreshSecret, s.cfg.JWTExpiry, s.cfg.RefreshExpiry)
}

func (s *UserService) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"_id": id, "is_deleted": false}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal("Failed to fetch user")
	}
	user.Password = ""
	return &user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updated_at"] = s.now()
	res, err := s.users.UpdateOne(ctx, bson.M{"_id": id, "is_deleted": false}, bson.M{"$set": fields})
	if err != nil {
		return apperror.Internal("Failed to update profile")
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("User not found")
	}
	return nil
}

// UpdateImage stores a base64 profile image and records its URL.
func (s *UserService) UpdateImage(ctx context.Context, id primitive.ObjectID, payload string) (string, error) {
	url, err := s.uploader.UploadBase64(ctx, storage.PrefixUserImage, payload, "jpg")
	if err != nil {
		return "", err
	}
	if err := s.UpdateProfile(ctx, id, bson.M{"image_url": url}); err != nil {
		return "", err
	}
	return url, nil
}

// ForgotPassword issues a reset token with a bounded lifetime. The token is
// returned to the caller; mailing it out is an external concern.
func (s *UserService) ForgotPassword(ctx context.Context, email string) (string, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email, "is_deleted": false}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return "", apperror.NotFound("User with this account does not exist")
	}
	if err != nil {
		return "", apperror.Internal("Error fetching from database")
	}

	token := utils.UniqueID()
	expiry := s.now().Add(s.cfg.ResetTokenExpiry)
	err = s.UpdateProfile(ctx, user.ID, bson.M{
		"reset_token":        token,
		"reset_token_expiry": expiry,
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

// ResetPassword consumes a valid, unexpired reset token.
func (s *UserService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < 8 {
		return apperror.BadRequest("Passwords must be 8 letters long")
	}
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"reset_token": token, "is_deleted": false}).Decode(&user)
	if err != nil {
		return apperror.BadRequest("Invalid or expired reset token")
	}
	if user.ResetTokenExpiry == nil || s.now().After(*user.ResetTokenExpiry) {
		return apperror.BadRequest("Invalid or expired reset token")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal("Error hashing password")
	}
	_, err = s.users.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{
		"$set":   bson.M{"password": string(hashed), "updated_at": s.now()},
		"$unset": bson.M{"reset_token": "", "reset_token_expiry": ""},
	})
	if err != nil {
		return apperror.Internal("Failed to reset password")
	}
	return nil
}

// Follow adds the target to the caller's following list and the caller to
// the target's followers; an earlier withdrawn entry is revived.
func (s *UserService) Follow(ctx context.Context, userID, targetID primitive.ObjectID) error {
	if userID == targetID {
		return apperror.BadRequest("Cannot follow yourself")
	}
	if err := s.addEdge(ctx, userID, "following", targetID); err != nil {
		return err
	}
	return s.addEdge(ctx, targetID, "followers", userID)
}

func (s *UserService) Unfollow(ctx context.Context, userID, targetID primitive.ObjectID) error {
	if err := s.removeEdge(ctx, userID, "following", targetID); err != nil {
		return err
	}
	return s.removeEdge(ctx, targetID, "followers", userID)
}

func (s *UserService) addEdge(ctx context.Context, ownerID primitive.ObjectID, field string, otherID primitive.ObjectID) error {
	user, err := s.FindByID(ctx, ownerID)
	if err != nil {
		return err
	}
	edges := user.Followers
	if field == "following" {
		edges = user.Following
	}
	for i, e := range edges {
		if e.UserID == otherID {
			edges[i].IsActive = true
			edges[i].IsDeleted = false
			return s.UpdateProfile(ctx, ownerID, bson.M{field: edges})
		}
	}
	edges = append(edges, models.Interaction{
		UserID:    otherID,
		IsActive:  true,
		CreatedAt: s.now(),
	})
	return s.UpdateProfile(ctx, ownerID, bson.M{field: edges})
}

func (s *UserService) removeEdge(ctx context.Context, ownerID primitive.ObjectID, field string, otherID primitive.ObjectID) error {
	user, err := s.FindByID(ctx, ownerID)
	if err != nil {
		return err
	}
	edges := user.Followers
	if field == "following" {
		edges = user.Following
	}
	for i, e := range edges {
		if e.UserID == otherID && e.IsActive {
			edges[i].IsActive = false
			edges[i].IsDeleted = true
			return s.UpdateProfile(ctx, ownerID, bson.M{field: edges})
		}
	}
	return apperror.NotFound("Follow entry not found")
}

// UpdateVendorBalance credits the vendor payout ledger.
func (s *UserService) UpdateVendorBalance(ctx context.Context, userID primitive.ObjectID, amount float64) error {
	res, err := s.users.UpdateOne(ctx,
		bson.M{"_id": userID, "is_deleted": false},
		bson.M{
			"$inc": bson.M{"availableBalance": amount},
			"$set": bson.M{"updated_at": s.now()},
		},
	)
	if err != nil {
		return apperror.Internal("Failed to update vendor balance")
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("Vendor user not found")
	}
	return nil
}

// SetUserType flips the account type, used by vendor approval.
func (s *UserService) SetUserType(ctx context.Context, userID primitive.ObjectID, userType string) error {
	return s.UpdateProfile(ctx, userID, bson.M{"user_type": userType})
}
