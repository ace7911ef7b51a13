// internal/email/mailer/catalog_change.go
package mailer

import (
	"context"
	"fmt"

	"github.com/nimbushr/catalog/internal/email"
	"github.com/nimbushr/catalog/internal/model"
)

// CatalogChangeData contains data for the catalog change template
type CatalogChangeData struct {
	Action     string
	ConfigType string
	ItemName   string
}

// CatalogNotifier emails the configured admin address after catalog
// mutations. It satisfies the catalog service's ChangeNotifier interface.
type CatalogNotifier struct {
	service *email.Service
	to      string
}

func NewCatalogNotifier(service *email.Service, to string) *CatalogNotifier {
	return &CatalogNotifier{
		service: service,
		to:      to,
	}
}

func (n *CatalogNotifier) NotifyCatalogChange(ctx context.Context, action string, configType model.ConfigType, itemName string) error {
	templateData := CatalogChangeData{
		Action:     action,
		ConfigType: string(configType),
		ItemName:   itemName,
	}

	emailData := email.EmailData{
		To:           n.to,
		FromName:     "HR Platform",
		Subject:      fmt.Sprintf("System configuration changed: %s", configType),
		TemplateName: "catalog_change",
		TemplateData: templateData,
	}

	return n.service.SendEmail(emailData)
}
