package tokens

// builtinTokens is the token list shipped with the binary. Mainnet entries
// cover the contracts the wallet shows by default; deployments extend the
// list through the tokens.file config.
var builtinTokens = []Token{
	{Address: "0xdac17f958d2ee523a2206206994597c13d831ec7", Symbol: "USDT", Name: "Tether USD", Decimals: 6, ChainID: 1},
	{Address: "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48", Symbol: "USDC", Name: "USD Coin", Decimals: 6, ChainID: 1},
	{Address: "0x6b175474e89094c44da98b954eedeac495271d0f", Symbol: "DAI", Name: "Dai Stablecoin", Decimals: 18, ChainID: 1},
	{Address: "0x2260fac5e5542a773aa44fbcfedf7c193bc2c599", Symbol: "WBTC", Name: "Wrapped BTC", Decimals: 8, ChainID: 1},
	{Address: "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2", Symbol: "WETH", Name: "Wrapped Ether", Decimals: 18, ChainID: 1},
	{Address: "0x514910771af9ca656af840dff83e8264ecf986ca", Symbol: "LINK", Name: "ChainLink Token", Decimals: 18, ChainID: 1},
	{Address: "0x1f9840a85d5af5bf1d1762f925bdaddc4201f984", Symbol: "UNI", Name: "Uniswap", Decimals: 18, ChainID: 1},
	{Address: "0x744d70fdbe2ba4cf95131626614a1763df805b9e", Symbol: "SNT", Name: "Status Network Token", Decimals: 18, ChainID: 1},

	// Sepolia
	{Address: "0x7169d38820dfd117c3fa1f22a697dba58d90ba06", Symbol: "USDT", Name: "Tether USD", Decimals: 6, ChainID: 11155111},
	{Address: "0x1c7d4b196cb0c7b01d743fbc6116a902379c7238", Symbol: "USDC", Name: "USD Coin", Decimals: 6, ChainID: 11155111},
}
