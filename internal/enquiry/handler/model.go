package handler

import "github.com/xw1nchester/protech-admin/internal/enquiry"

type SearchRequest struct {
	Search string `json:"search"`
}

type UnreadResponse struct {
	Enquiries []enquiry.Enquiry `json:"enquiries"`
	Count     int               `json:"count"`
}

type SubscriptionResponse struct {
	Subscribed bool `json:"subscribed"`
}
