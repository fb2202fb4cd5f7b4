package pembahasan

import "context"

type PembahasanContainer struct {
	Service Service
	Handler *Handler
}

func NewPembahasanContainer(ctx context.Context) (*PembahasanContainer, error) {
	provider, err := NewGeminiProvider(ctx)
	if err != nil {
		return nil, err
	}
	service := NewService(provider)
	handler := NewHandler(service)

	return &PembahasanContainer{
		Service: service,
		Handler: handler,
	}, nil
}
