package webhook

var DefaultTemplates = defaultTemplates
