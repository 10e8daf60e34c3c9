package kubeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/Godmook/GPU-Controller/pkg/kubeclient/models"
)

const apiPrefix = "/apis/kueue.x-k8s.io/v1beta1"

// ErrNotFound is returned when the object left the external system.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a version-conditioned write lost the race.
var ErrConflict = errors.New("version conflict")

// Client is the surface of the external queueing system this controller
// reads and writes. All writes are version-conditioned.
type Client interface {
	ListQueues(ctx context.Context, req *models.ListQueuesRequest) (*models.ListQueuesResponse, error)
	GetCohort(ctx context.Context, req *models.GetCohortRequest) (*models.GetCohortResponse, error)
	ListWorkloads(ctx context.Context, req *models.ListWorkloadsRequest) (*models.ListWorkloadsResponse, error)
	UpdateWorkloadPriority(ctx context.Context, req *models.UpdateWorkloadPriorityRequest) (*models.UpdateWorkloadPriorityResponse, error)
}

type impl struct {
	endpoint    string
	bearerToken string
	cli         *http.Client
}

// NewClient ...
func NewClient(opts *Options) Client {
	cli := &http.Client{Timeout: opts.Timeout}
	token := ""
	if opts.BearerTokenFile != "" {
		if content, err := os.ReadFile(opts.BearerTokenFile); err == nil {
			token = strings.TrimSpace(string(content))
		}
	}
	return &impl{endpoint: opts.Endpoint, bearerToken: token, cli: cli}
}

var _ Client = (*impl)(nil)

// ListQueues ...
func (i *impl) ListQueues(ctx context.Context, req *models.ListQueuesRequest) (*models.ListQueuesResponse, error) {
	resp := new(models.ListQueuesResponse)
	if err := i.doRequest(ctx, http.MethodGet, fmt.Sprintf("%s%s/clusterqueues", i.endpoint, apiPrefix), req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetCohort ...
func (i *impl) GetCohort(ctx context.Context, req *models.GetCohortRequest) (*models.GetCohortResponse, error) {
	resp := new(models.GetCohortResponse)
	if err := i.doRequest(ctx, http.MethodGet, fmt.Sprintf("%s%s/cohorts/%s", i.endpoint, apiPrefix, req.Name), req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ListWorkloads ...
func (i *impl) ListWorkloads(ctx context.Context, req *models.ListWorkloadsRequest) (*models.ListWorkloadsResponse, error) {
	resp := new(models.ListWorkloadsResponse)
	if err := i.doRequest(ctx, http.MethodGet, fmt.Sprintf("%s%s/workloads", i.endpoint, apiPrefix), req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateWorkloadPriority ...
func (i *impl) UpdateWorkloadPriority(ctx context.Context, req *models.UpdateWorkloadPriorityRequest) (*models.UpdateWorkloadPriorityResponse, error) {
	resp := new(models.UpdateWorkloadPriorityResponse)
	if err := i.doRequest(ctx, http.MethodPut,
		fmt.Sprintf("%s%s/namespaces/%s/workloads/%s/priority", i.endpoint, apiPrefix, req.Namespace, req.Name), req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (i *impl) doRequest(ctx context.Context, method, url string, req, resp interface{}) error {
	request, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return err
	}
	request.Header.Add("Accept", "application/json")
	if i.bearerToken != "" {
		request.Header.Add("Authorization", "Bearer "+i.bearerToken)
	}

	query, err := parseQuery(req)
	if err != nil {
		return err
	}
	mergeQuery(request, query)

	if method == http.MethodPatch || method == http.MethodPost || method == http.MethodPut {
		request.Header.Add("Content-Type", "application/json")
		content, err := json.Marshal(req)
		if err != nil {
			return err
		}
		request.Body = io.NopCloser(bytes.NewReader(content))
	}

	var response *http.Response
	response, err = i.cli.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode > 399 {
		message, _ := io.ReadAll(response.Body)
		switch response.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%s: %w", message, ErrNotFound)
		case http.StatusConflict:
			return fmt.Errorf("%s: %w", message, ErrConflict)
		default:
			return fmt.Errorf("%d: %s", response.StatusCode, message)
		}
	}

	decoder := json.NewDecoder(response.Body)
	if err = decoder.Decode(resp); err != nil {
		return err
	}
	return nil
}

func mergeQuery(request *http.Request, query url.Values) {
	if len(query) == 0 {
		return
	}
	q := request.URL.Query()
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	request.URL.RawQuery = q.Encode()
}

func parseQuery(obj interface{}) (url.Values, error) {
	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("invalid obj type: %s", v.Type().Kind())
	}

	res := make(url.Values, 0)
	for i := 0; i < v.NumField(); i++ {
		tag, ok := v.Type().Field(i).Tag.Lookup("query")
		if !ok {
			continue
		}
		values, err := parseFieldValue(v.Field(i))
		if err != nil {
			return nil, err
		}
		if len(values) > 0 {
			res[tag] = values
		}
	}
	return res, nil
}

func parseFieldValue(field reflect.Value) ([]string, error) {
	if field.IsZero() {
		return nil, nil
	}
	switch field.Kind() {
	case reflect.Slice, reflect.Array:
		if field.Len() == 0 {
			return nil, nil
		}
		res := make([]string, 0, field.Len())
		for i := 0; i < field.Len(); i++ {
			s, err := getValueString(field.Index(i))
			if err != nil {
				return nil, err
			}
			res = append(res, s)
		}
		return res, nil
	default:
		s, err := getValueString(field)
		if err != nil {
			return nil, err
		}
		return []string{s}, nil
	}
}

func getValueString(v reflect.Value) (string, error) {
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64), nil
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32), nil
	case reflect.String:
		return v.String(), nil
	default:
		return "", fmt.Errorf("unsupported type %s", v.Type().String())
	}
}
