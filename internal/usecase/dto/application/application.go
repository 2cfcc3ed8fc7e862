package application

import "github.com/LavaJover/shvark-storefront-service/internal/domain"

type SubmitApplicationInput struct {
	MerchantID   string
	MerchantData domain.MerchantData
	StoreConfig  domain.StoreConfig
}

type RejectApplicationInput struct {
	ApplicationID string
	ReviewerID    string
	Reason        string
}
