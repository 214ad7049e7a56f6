package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pixeldesignindia/organic-api/apperror"
	"github.com/pixeldesignindia/organic-api/models"
	"github.com/pixeldesignindia/organic-api/utils"
)

type RoleService struct {
	roles *mongo.Collection
	now   func() time.Time
}

func NewRoleService(db *mongo.Database) *RoleService {
	return &RoleService{
		roles: db.Collection("roles"),
		now:   time.Now,
	}
}

// sortPermissions orders a role's permission list by module name,
// case-sensitively.
func sortPermissions(perms []models.Permission) {
	sort.SliceStable(perms, func(i, j int) bool {
		return perms[i].Module < perms[j].Module
	})
}

// sortPermissionsFold re-sorts with a case-insensitive comparator, applied
// as a second pass when listing every role.
func sortPermissionsFold(perms []models.Permission) {
	sort.SliceStable(perms, func(i, j int) bool {
		return strings.ToLower(perms[i].Module) < strings.ToLower(perms[j].Module)
	})
}

func (s *RoleService) Create(ctx context.Context, role models.Role) (*models.Role, error) {
	err := s.roles.FindOne(ctx, bson.M{"name": role.Name, "is_deleted": false}).Err()
	if err == nil {
		return nil, apperror.Conflict("Role with same name already exists")
	}
	if err != mongo.ErrNoDocuments {
		return nil, apperror.Internal("Error checking role existence")
	}

	now := s.now()
	role.Base = models.Base{
		ID:        primitive.NewObjectID(),
		UniqueID:  utils.UniqueID(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if role.Permissions == nil {
		role.Permissions = []models.Permission{}
	}
	if _, err := s.roles.InsertOne(ctx, role); err != nil {
		return nil, apperror.Internal("Failed to create role")
	}
	return &role, nil
}

func (s *RoleService) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Role, error) {
	var role models.Role
	err := s.roles.FindOne(ctx, bson.M{"_id": id, "is_deleted": false}).Decode(&role)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("Role not found")
		}
		return nil, apperror.Internal("Failed to fetch role")
	}
	sortPermissions(role.Permissions)
	return &role, nil
}

func (s *RoleService) List(ctx context.Context) ([]models.Role, error) {
	cursor, err := s.roles.Find(ctx, bson.M{"is_deleted": false})
	if err != nil {
		return nil, apperror.Internal("Failed to fetch roles")
	}
	var roles []models.Role
	if err := cursor.All(ctx, &roles); err != nil {
		return nil, apperror.Internal("Failed to decode roles")
	}
	for i := range roles {
		sortPermissions(roles[i].Permissions)
		sortPermissionsFold(roles[i].Permissions)
	}
	return roles, nil
}

// AssignPermissions replaces the role's entire permission list.
func (s *RoleService) AssignPermissions(ctx context.Context, roleID primitive.ObjectID, perms []models.Permission) error {
	if perms == nil {
		perms = []models.Permission{}
	}
	res, err := s.roles.UpdateOne(ctx,
		bson.M{"_id": roleID, "is_deleted": false},
		bson.M{"$set": bson.M{"permissions": perms, "updated_at": s.now()}},
	)
	if err != nil {
		return apperror.Internal("Failed to assign permissions")
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("Role not found")
	}
	return nil
}

func (s *RoleService) Delete(ctx context.Context, roleID primitive.ObjectID) error {
	res, err := s.roles.UpdateOne(ctx,
		bson.M{"_id": roleID, "is_deleted": false},
		bson.M{"$set": bson.M{"is_deleted": true, "is_active": false, "updated_at": s.now()}},
	)
	if err != nil {
		return apperror.Internal("Failed to delete role")
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("Role not found")
	}
	return nil
}
