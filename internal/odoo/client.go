package odoo

import (
	"context"
	"errors"
	"fmt"

	"github.com/kolo/xmlrpc"

	"github.com/catalogo-web/catalogo-api/internal/config"
)

// Errores de dominio (no HTTP). El handler los traduce a status codes.
var (
	// ErrAuthFailed indica que Odoo rechazó las credenciales o devolvió
	// un uid falsy. Debe mapear a 401, nunca a 500.
	ErrAuthFailed = errors.New("odoo auth failed")
)

// rpcCaller es lo mínimo que necesitamos del cliente XML-RPC.
// Permite testear sin levantar un Odoo real.
type rpcCaller interface {
	Call(serviceMethod string, args interface{}, reply interface{}) error
}

var newRPCClient = func(endpoint string) (rpcCaller, error) {
	return xmlrpc.NewClient(endpoint, nil)
}

// Client habla con una instancia de Odoo vía XML-RPC.
// Expone solo las dos llamadas que el catálogo necesita: authenticate y
// execute_kw. No reintenta; cada request entrante hace un intento.
type Client struct {
	db   string
	user string
	pass string

	common rpcCaller // /xmlrpc/2/common: autenticación
	object rpcCaller // /xmlrpc/2/object: execute_kw sobre modelos
}

// NewClient crea un cliente apuntando a los dos endpoints XML-RPC de Odoo.
func NewClient(cfg config.Config) (*Client, error) {
	common, err := newRPCClient(cfg.OdooURL + "/xmlrpc/2/common")
	if err != nil {
		return nil, fmt.Errorf("odoo common client: %w", err)
	}
	object, err := newRPCClient(cfg.OdooURL + "/xmlrpc/2/object")
	if err != nil {
		return nil, fmt.Errorf("odoo object client: %w", err)
	}

	return &Client{
		db:     cfg.OdooDB,
		user:   cfg.OdooUser,
		pass:   cfg.OdooPass,
		common: common,
		object: object,
	}, nil
}

// Authenticate abre una sesión para el request actual y devuelve el uid.
// La sesión no se reusa entre requests: cada operación del catálogo
// autentica de nuevo, igual que hacía el deploy serverless original.
func (client *Client) Authenticate(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var reply interface{}
	err := client.common.Call("authenticate", []interface{}{client.db, client.user, client.pass, map[string]interface{}{}}, &reply)
	if err != nil {
		return 0, fmt.Errorf("odoo authenticate: %w", err)
	}

	// Odoo devuelve false (bool) o 0 cuando las credenciales no sirven.
	uid, ok := Int(reply)
	if !ok || uid <= 0 {
		return 0, ErrAuthFailed
	}
	return uid, nil
}

// ExecuteKw invoca model.method con args posicionales y kwargs opcionales.
// Devuelve el resultado sin tipar; los helpers de values.go hacen la
// coerción defensiva del lado del consumidor.
func (client *Client) ExecuteKw(ctx context.Context, uid int, model, method string, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	params := []interface{}{client.db, uid, client.pass, model, method, args}
	if kwargs != nil {
		params = append(params, kwargs)
	}

	var reply interface{}
	if err := client.object.Call("execute_kw", params, &reply); err != nil {
		return nil, fmt.Errorf("odoo %s.%s: %w", model, method, err)
	}
	return reply, nil
}
