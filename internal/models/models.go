package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleNone  = ``
	RoleAgent = `agent`
	RoleAdmin = `admin`
	RoleFraud = `fraud`
)

const (
	VerificationPending  = `pending`
	VerificationVerified = `verified`
	VerificationRejected = `rejected`
)

const (
	OfferPending = `pending`
	OfferAccept  = `accept`
	OfferReject  = `reject`
)

type AuthorizationToken struct {
	Token string `json:"token"`
}

type CustomClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

type User struct {
	Id     string `json:"_id" bson:"_id,omitempty" db:"id"`
	Name   string `json:"name" bson:"name" db:"name"`
	Email  string `json:"email" bson:"email" db:"email"`
	Image  string `json:"image" bson:"image" db:"image"`
	Role   string `json:"role" bson:"role" db:"role"`
	Status string `json:"status" bson:"status" db:"status"`
}

// UserStatusUpdate is the admin role/status change. Empty fields are left untouched.
type UserStatusUpdate struct {
	Role   string `json:"role"`
	Status string `json:"status"`
}

func (u UserStatusUpdate) IsFraud() bool {
	return u.Role == RoleFraud || u.Status == RoleFraud
}

type Property struct {
	Id                 string    `json:"_id" bson:"_id,omitempty" db:"id"`
	Title              string    `json:"title" bson:"title" db:"title"`
	Description        string    `json:"description" bson:"description" db:"description"`
	Location           string    `json:"location" bson:"location" db:"location"`
	Image              string    `json:"image" bson:"image" db:"image"`
	Price              float64   `json:"price" bson:"price" db:"price"`
	Bedrooms           int       `json:"bedrooms" bson:"bedrooms" db:"bedrooms"`
	Bathrooms          int       `json:"bathrooms" bson:"bathrooms" db:"bathrooms"`
	Area               float64   `json:"area" bson:"area" db:"area"`
	AgentName          string    `json:"agentName" bson:"agentName" db:"agent_name"`
	AgentEmail         string    `json:"agentEmail" bson:"agentEmail" db:"agent_email"`
	VerificationStatus string    `json:"verificationStatus" bson:"verificationStatus" db:"verification_status"`
	CreatedAt          time.Time `json:"createdAt" bson:"createdAt" db:"created_at"`
}

// PropertyUpdate carries the fields an agent may edit. Nil fields are not written.
type PropertyUpdate struct {
	Title       *string  `json:"title,omitempty" bson:"title,omitempty" db:"title"`
	Description *string  `json:"description,omitempty" bson:"description,omitempty" db:"description"`
	Location    *string  `json:"location,omitempty" bson:"location,omitempty" db:"location"`
	Image       *string  `json:"image,omitempty" bson:"image,omitempty" db:"image"`
	Price       *float64 `json:"price,omitempty" bson:"price,omitempty" db:"price"`
	Bedrooms    *int     `json:"bedrooms,omitempty" bson:"bedrooms,omitempty" db:"bedrooms"`
	Bathrooms   *int     `json:"bathrooms,omitempty" bson:"bathrooms,omitempty" db:"bathrooms"`
	Area        *float64 `json:"area,omitempty" bson:"area,omitempty" db:"area"`
}

func (u PropertyUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Location == nil && u.Image == nil &&
		u.Price == nil && u.Bedrooms == nil && u.Bathrooms == nil && u.Area == nil
}

type VerificationUpdate struct {
	Status string `json:"status"`
}

type WishlistItem struct {
	Id         string    `json:"_id" bson:"_id,omitempty" db:"id"`
	PropertyId string    `json:"propertyId" bson:"propertyId" db:"property_id"`
	Email      string    `json:"email" bson:"email" db:"email"`
	Title      string    `json:"title" bson:"title" db:"title"`
	Location   string    `json:"location" bson:"location" db:"location"`
	Image      string    `json:"image" bson:"image" db:"image"`
	Price      float64   `json:"price" bson:"price" db:"price"`
	AgentName  string    `json:"agentName" bson:"agentName" db:"agent_name"`
	AgentEmail string    `json:"agentEmail" bson:"agentEmail" db:"agent_email"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt" db:"created_at"`
}

type Offer struct {
	Id         string    `json:"_id" bson:"_id,omitempty" db:"id"`
	PropertyId string    `json:"propertyId" bson:"propertyId" db:"property_id"`
	Title      string    `json:"title" bson:"title" db:"title"`
	Location   string    `json:"location" bson:"location" db:"location"`
	AgentName  string    `json:"agentName" bson:"agentName" db:"agent_name"`
	AgentEmail string    `json:"agentEmail" bson:"agentEmail" db:"agent_email"`
	BuyerName  string    `json:"buyerName" bson:"buyerName" db:"buyer_name"`
	BuyerEmail string    `json:"buyerEmail" bson:"buyerEmail" db:"buyer_email"`
	Amount     float64   `json:"amount" bson:"amount" db:"amount"`
	Status     string    `json:"status" bson:"status" db:"status"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt" db:"created_at"`
}

type OfferStatusUpdate struct {
	Status string `json:"status"`
}

type Review struct {
	Id            string    `json:"_id" bson:"_id,omitempty" db:"id"`
	PropertyId    string    `json:"propertyId" bson:"propertyId" db:"property_id"`
	PropertyTitle string    `json:"propertyTitle" bson:"propertyTitle" db:"property_title"`
	ReviewerName  string    `json:"reviewerName" bson:"reviewerName" db:"reviewer_name"`
	ReviewerEmail string    `json:"reviewerEmail" bson:"reviewerEmail" db:"reviewer_email"`
	ReviewerImage string    `json:"reviewerImage" bson:"reviewerImage" db:"reviewer_image"`
	Comment       string    `json:"comment" bson:"comment" db:"comment"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt" db:"created_at"`
}

// Store acknowledgements, serialized as-is in responses.

type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedId   string `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// NewId returns a fresh object id in its hex form.
func NewId() string {
	return primitive.NewObjectID().Hex()
}

func ValidId(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}
