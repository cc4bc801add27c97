package services

import (
	"encoding/json"

	"gorm.io/datatypes"

	"venuescout-api/models"
	"venuescout-api/utils"
)

// LinkUpdates converts a raw partial-update payload for a project-venue link
// into a column update map. Only keys present in the payload are applied;
// absent keys leave their columns untouched and an explicit null clears the
// column. Unknown keys are ignored.
func LinkUpdates(body []byte) (map[string]interface{}, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, utils.Validationf("invalid JSON body: %v", err)
	}

	updates := make(map[string]interface{})

	for key, value := range raw {
		isNull := string(value) == "null"

		switch key {
		case "outreach_status":
			if isNull {
				return nil, utils.Validationf("outreach_status cannot be null")
			}
			var status string
			if err := json.Unmarshal(value, &status); err != nil {
				return nil, utils.Validationf("outreach_status must be a string")
			}
			if !models.IsValidOutreachStatus(status) {
				return nil, utils.Validationf("invalid outreach_status %q", status)
			}
			updates[key] = status

		case "include_in_proposal":
			if isNull {
				return nil, utils.Validationf("include_in_proposal cannot be null")
			}
			var flag bool
			if err := json.Unmarshal(value, &flag); err != nil {
				return nil, utils.Validationf("include_in_proposal must be a boolean")
			}
			updates[key] = flag

		case "is_available":
			if isNull {
				updates[key] = nil
				continue
			}
			var avail bool
			if err := json.Unmarshal(value, &avail); err != nil {
				return nil, utils.Validationf("is_available must be a boolean")
			}
			updates[key] = avail

		case "quoted_price":
			if isNull {
				updates[key] = nil
				continue
			}
			var price float64
			if err := json.Unmarshal(value, &price); err != nil {
				return nil, utils.Validationf("quoted_price must be a number")
			}
			if price <= 0 {
				return nil, utils.Validationf("quoted_price must be greater than zero")
			}
			updates[key] = price

		case "ai_context":
			if isNull {
				updates[key] = nil
				continue
			}
			var ctx map[string]interface{}
			if err := json.Unmarshal(value, &ctx); err != nil {
				return nil, utils.Validationf("ai_context must be an object")
			}
			updates[key] = datatypes.JSONMap(ctx)

		case "catering_provider_id", "availability_dates", "room_allocation",
			"catering_description", "pros", "cons", "ai_description",
			"final_description", "notes":
			if isNull {
				updates[key] = nil
				continue
			}
			var text string
			if err := json.Unmarshal(value, &text); err != nil {
				return nil, utils.Validationf("%s must be a string", key)
			}
			updates[key] = text
		}
	}

	return updates, nil
}
